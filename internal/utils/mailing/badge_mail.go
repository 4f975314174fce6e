package mailing

import "fmt"

// SendBadgeEarnedMail congratulates a user on a newly earned badge tier.
func SendBadgeEarnedMail(toEmail, badgeName, tier, description string) error {
	subject := fmt.Sprintf("You earned the %s %s badge!", tier, badgeName)
	body := fmt.Sprintf(`
		<h2>Congratulations!</h2>
		<p>You just earned the <b>%s</b> tier of the <b>%s</b> badge.</p>
		<p>%s</p>
		<p>Keep saving food!</p>
	`, tier, badgeName, description)
	return SendMail(toEmail, subject, body)
}
