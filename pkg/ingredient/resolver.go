package ingredient

import (
	"context"
	"sort"
	"sync"

	"github.com/plateful/plateful-backend/entities"
	"github.com/plateful/plateful-backend/internal/utils/logging"
)

// Default reference returned when no candidate clears the acceptance
// threshold. Deliberately conservative so unknown ingredients still
// produce a small, defensible impact figure.
var DefaultReference = Reference{
	Name:         "unknown",
	Category:     entities.CategoryOther,
	WeightKg:     0.1,
	CostUsd:      1.00,
	CarbonKgCo2e: 1.0,
}

type (
	// Reference is the resolved view of an ingredient lookup row.
	Reference struct {
		Name         string
		Category     string
		WeightKg     float64
		CostUsd      float64
		CarbonKgCo2e float64
		Score        float64
		Matched      bool
	}

	Resolver interface {
		// Resolve maps a free-text ingredient name to a reference.
		// It never fails: unknown names degrade to DefaultReference.
		Resolve(raw string) Reference
		// Reload rebuilds the in-memory snapshot from the repository.
		Reload(ctx context.Context) error
	}

	candidate struct {
		norm string
		ref  Reference
	}

	resolver struct {
		repository IngredientRepository
		matcher    Matcher
		threshold  float64
		log        *logging.Logger

		mu         sync.RWMutex
		exact      map[string]Reference // normalized name or alias -> reference
		candidates []candidate          // sorted by norm for deterministic ties
	}
)

func NewResolver(repository IngredientRepository, matcher Matcher, threshold float64, log *logging.Logger) Resolver {
	return &resolver{
		repository: repository,
		matcher:    matcher,
		threshold:  threshold,
		log:        log,
		exact:      map[string]Reference{},
	}
}

func (r *resolver) Reload(ctx context.Context) error {
	refs, err := r.repository.ListAll(ctx)
	if err != nil {
		return err
	}

	exact := make(map[string]Reference, len(refs))
	candidates := make([]candidate, 0, len(refs))

	for _, row := range refs {
		ref := Reference{
			Name:         row.Name,
			Category:     row.Category,
			WeightKg:     row.WeightKg,
			CostUsd:      row.CostUsd,
			CarbonKgCo2e: row.CarbonKgCo2e,
			Score:        1,
			Matched:      true,
		}

		norm := Normalize(row.Name)
		if norm == "" {
			continue
		}
		if _, taken := exact[norm]; !taken {
			exact[norm] = ref
		}
		candidates = append(candidates, candidate{norm: norm, ref: ref})

		for _, alias := range row.AliasList() {
			aliasNorm := Normalize(alias)
			if aliasNorm == "" || aliasNorm == norm {
				continue
			}
			if _, taken := exact[aliasNorm]; !taken {
				exact[aliasNorm] = ref
			}
			candidates = append(candidates, candidate{norm: aliasNorm, ref: ref})
		}
	}

	sort.Slice(candidates, func(i, j int) bool {
		return candidates[i].norm < candidates[j].norm
	})

	r.mu.Lock()
	r.exact = exact
	r.candidates = candidates
	r.mu.Unlock()

	r.log.Info("ingredient reference snapshot reloaded", "references", len(refs), "candidates", len(candidates))
	return nil
}

func (r *resolver) Resolve(raw string) Reference {
	query := Normalize(raw)
	if query == "" {
		return defaultFor(raw)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	if ref, ok := r.exact[query]; ok {
		return ref
	}

	var best Reference
	bestScore := 0.0
	for _, c := range r.candidates {
		score := r.matcher.Score(c.norm, query)
		if score > bestScore {
			bestScore = score
			best = c.ref
		}
	}

	if bestScore >= r.threshold {
		best.Score = bestScore
		return best
	}

	r.log.Debug("ingredient fell back to default reference", "query", raw, "best_score", bestScore)
	return defaultFor(raw)
}

func defaultFor(raw string) Reference {
	ref := DefaultReference
	ref.Name = raw
	return ref
}
