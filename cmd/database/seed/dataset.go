package seed

import "github.com/plateful/plateful-backend/domain"

// defaultDataset is the built-in reference table. Weights come from typical
// USDA serving sizes, costs from average US grocery prices, carbon factors
// from DEFRA/EPA emission estimates per kg of food.
var defaultDataset = []domain.DatasetIngredient{
	// produce - vegetables
	{Name: "tomato", Category: "produce", WeightKg: 0.15, CostUsd: 0.75, CarbonKgCo2e: 1.4, Aliases: []string{"tomatoes", "roma tomato", "cherry tomato", "grape tomato"}},
	{Name: "onion", Category: "produce", WeightKg: 0.15, CostUsd: 0.50, CarbonKgCo2e: 0.5, Aliases: []string{"onions", "yellow onion", "white onion", "red onion"}},
	{Name: "garlic", Category: "produce", WeightKg: 0.05, CostUsd: 0.50, CarbonKgCo2e: 0.5, Aliases: []string{"garlic clove", "garlic cloves"}},
	{Name: "potato", Category: "produce", WeightKg: 0.20, CostUsd: 0.40, CarbonKgCo2e: 0.5, Aliases: []string{"potatoes", "russet potato", "red potato", "yukon gold"}},
	{Name: "carrot", Category: "produce", WeightKg: 0.10, CostUsd: 0.30, CarbonKgCo2e: 0.4, Aliases: []string{"carrots", "baby carrots"}},
	{Name: "broccoli", Category: "produce", WeightKg: 0.30, CostUsd: 1.75, CarbonKgCo2e: 0.8, Aliases: []string{"broccoli florets", "broccoli head"}},
	{Name: "spinach", Category: "produce", WeightKg: 0.15, CostUsd: 2.50, CarbonKgCo2e: 0.5, Aliases: []string{"baby spinach", "spinach leaves"}},
	{Name: "lettuce", Category: "produce", WeightKg: 0.25, CostUsd: 1.50, CarbonKgCo2e: 0.7, Aliases: []string{"romaine lettuce", "iceberg lettuce", "lettuce head"}},
	{Name: "bell pepper", Category: "produce", WeightKg: 0.15, CostUsd: 1.00, CarbonKgCo2e: 1.1, Aliases: []string{"bell peppers", "red pepper", "green pepper", "yellow pepper", "capsicum"}},
	{Name: "cucumber", Category: "produce", WeightKg: 0.20, CostUsd: 0.75, CarbonKgCo2e: 0.7, Aliases: []string{"cucumbers", "english cucumber"}},
	{Name: "celery", Category: "produce", WeightKg: 0.40, CostUsd: 1.50, CarbonKgCo2e: 0.4, Aliases: []string{"celery stalks", "celery sticks"}},
	{Name: "mushroom", Category: "produce", WeightKg: 0.10, CostUsd: 1.50, CarbonKgCo2e: 0.8, Aliases: []string{"mushrooms", "button mushrooms", "cremini", "portobello", "shiitake"}},
	{Name: "zucchini", Category: "produce", WeightKg: 0.20, CostUsd: 1.00, CarbonKgCo2e: 0.6, Aliases: []string{"zucchinis", "courgette"}},
	{Name: "asparagus", Category: "produce", WeightKg: 0.20, CostUsd: 3.00, CarbonKgCo2e: 1.0, Aliases: []string{"asparagus spears"}},
	{Name: "corn", Category: "produce", WeightKg: 0.20, CostUsd: 0.50, CarbonKgCo2e: 1.0, Aliases: []string{"corn on the cob", "sweet corn", "corn kernels"}},
	{Name: "cabbage", Category: "produce", WeightKg: 0.50, CostUsd: 1.50, CarbonKgCo2e: 0.4, Aliases: []string{"green cabbage", "red cabbage", "napa cabbage"}},
	{Name: "cauliflower", Category: "produce", WeightKg: 0.50, CostUsd: 2.50, CarbonKgCo2e: 0.7, Aliases: []string{"cauliflower head", "cauliflower florets"}},
	{Name: "green beans", Category: "produce", WeightKg: 0.15, CostUsd: 2.00, CarbonKgCo2e: 0.8, Aliases: []string{"string beans", "snap beans"}},
	{Name: "peas", Category: "produce", WeightKg: 0.15, CostUsd: 2.00, CarbonKgCo2e: 0.8, Aliases: []string{"green peas", "snow peas", "snap peas"}},
	{Name: "kale", Category: "produce", WeightKg: 0.15, CostUsd: 2.50, CarbonKgCo2e: 0.5, Aliases: []string{"kale leaves", "baby kale"}},
	{Name: "avocado", Category: "produce", WeightKg: 0.20, CostUsd: 1.50, CarbonKgCo2e: 2.5, Aliases: []string{"avocados"}},
	{Name: "eggplant", Category: "produce", WeightKg: 0.35, CostUsd: 1.50, CarbonKgCo2e: 0.8, Aliases: []string{"aubergine", "eggplants"}},

	// produce - fruits
	{Name: "apple", Category: "produce", WeightKg: 0.18, CostUsd: 0.75, CarbonKgCo2e: 0.4, Aliases: []string{"apples", "green apple", "red apple", "gala apple", "fuji apple"}},
	{Name: "banana", Category: "produce", WeightKg: 0.12, CostUsd: 0.25, CarbonKgCo2e: 0.9, Aliases: []string{"bananas"}},
	{Name: "orange", Category: "produce", WeightKg: 0.20, CostUsd: 0.75, CarbonKgCo2e: 0.5, Aliases: []string{"oranges", "navel orange"}},
	{Name: "lemon", Category: "produce", WeightKg: 0.10, CostUsd: 0.50, CarbonKgCo2e: 0.5, Aliases: []string{"lemons", "lemon juice"}},
	{Name: "lime", Category: "produce", WeightKg: 0.07, CostUsd: 0.35, CarbonKgCo2e: 0.5, Aliases: []string{"limes", "lime juice"}},
	{Name: "strawberry", Category: "produce", WeightKg: 0.20, CostUsd: 3.00, CarbonKgCo2e: 0.5, Aliases: []string{"strawberries"}},
	{Name: "blueberry", Category: "produce", WeightKg: 0.15, CostUsd: 3.50, CarbonKgCo2e: 0.6, Aliases: []string{"blueberries"}},
	{Name: "grape", Category: "produce", WeightKg: 0.25, CostUsd: 2.50, CarbonKgCo2e: 0.7, Aliases: []string{"grapes", "red grapes", "green grapes"}},
	{Name: "mango", Category: "produce", WeightKg: 0.30, CostUsd: 1.50, CarbonKgCo2e: 1.5, Aliases: []string{"mangos", "mangoes"}},
	{Name: "pineapple", Category: "produce", WeightKg: 1.0, CostUsd: 3.00, CarbonKgCo2e: 1.0, Aliases: []string{"pineapples"}},
	{Name: "watermelon", Category: "produce", WeightKg: 5.0, CostUsd: 6.00, CarbonKgCo2e: 0.4, Aliases: []string{"watermelons"}},
	{Name: "peach", Category: "produce", WeightKg: 0.15, CostUsd: 1.00, CarbonKgCo2e: 0.5, Aliases: []string{"peaches"}},
	{Name: "pear", Category: "produce", WeightKg: 0.18, CostUsd: 1.00, CarbonKgCo2e: 0.4, Aliases: []string{"pears"}},

	// protein - meat
	{Name: "chicken breast", Category: "protein", WeightKg: 0.17, CostUsd: 3.50, CarbonKgCo2e: 6.9, Aliases: []string{"chicken breasts", "boneless chicken", "skinless chicken breast"}},
	{Name: "chicken thigh", Category: "protein", WeightKg: 0.12, CostUsd: 2.50, CarbonKgCo2e: 6.9, Aliases: []string{"chicken thighs", "bone-in chicken thigh"}},
	{Name: "chicken", Category: "protein", WeightKg: 0.15, CostUsd: 3.00, CarbonKgCo2e: 6.9, Aliases: []string{"whole chicken", "chicken pieces"}},
	{Name: "ground beef", Category: "protein", WeightKg: 0.25, CostUsd: 5.00, CarbonKgCo2e: 27.0, Aliases: []string{"minced beef", "beef mince", "hamburger meat"}},
	{Name: "beef steak", Category: "protein", WeightKg: 0.22, CostUsd: 8.00, CarbonKgCo2e: 27.0, Aliases: []string{"steak", "ribeye", "sirloin", "filet mignon", "beef"}},
	{Name: "pork chop", Category: "protein", WeightKg: 0.18, CostUsd: 3.50, CarbonKgCo2e: 12.1, Aliases: []string{"pork chops", "pork loin"}},
	{Name: "ground pork", Category: "protein", WeightKg: 0.25, CostUsd: 4.00, CarbonKgCo2e: 12.1, Aliases: []string{"minced pork", "pork mince"}},
	{Name: "bacon", Category: "protein", WeightKg: 0.15, CostUsd: 5.00, CarbonKgCo2e: 12.1, Aliases: []string{"bacon strips", "streaky bacon"}},
	{Name: "sausage", Category: "protein", WeightKg: 0.10, CostUsd: 1.50, CarbonKgCo2e: 12.1, Aliases: []string{"sausages", "italian sausage", "breakfast sausage"}},
	{Name: "ham", Category: "protein", WeightKg: 0.10, CostUsd: 2.00, CarbonKgCo2e: 12.1, Aliases: []string{"sliced ham", "deli ham"}},
	{Name: "lamb", Category: "protein", WeightKg: 0.20, CostUsd: 10.00, CarbonKgCo2e: 39.2, Aliases: []string{"lamb chop", "lamb chops", "ground lamb"}},
	{Name: "turkey", Category: "protein", WeightKg: 0.15, CostUsd: 3.00, CarbonKgCo2e: 10.9, Aliases: []string{"turkey breast", "ground turkey", "deli turkey"}},

	// protein - seafood
	{Name: "salmon", Category: "protein", WeightKg: 0.17, CostUsd: 6.00, CarbonKgCo2e: 5.4, Aliases: []string{"salmon fillet", "salmon filet", "smoked salmon"}},
	{Name: "tuna", Category: "protein", WeightKg: 0.15, CostUsd: 2.50, CarbonKgCo2e: 5.4, Aliases: []string{"tuna steak", "canned tuna", "tuna fish"}},
	{Name: "shrimp", Category: "protein", WeightKg: 0.15, CostUsd: 6.00, CarbonKgCo2e: 12.0, Aliases: []string{"shrimps", "prawns", "jumbo shrimp"}},
	{Name: "cod", Category: "protein", WeightKg: 0.17, CostUsd: 5.00, CarbonKgCo2e: 4.0, Aliases: []string{"cod fillet", "atlantic cod"}},
	{Name: "tilapia", Category: "protein", WeightKg: 0.15, CostUsd: 4.00, CarbonKgCo2e: 4.0, Aliases: []string{"tilapia fillet"}},
	{Name: "crab", Category: "protein", WeightKg: 0.15, CostUsd: 12.00, CarbonKgCo2e: 5.0, Aliases: []string{"crab meat", "crab legs"}},

	// protein - eggs and plant-based
	{Name: "egg", Category: "protein", WeightKg: 0.06, CostUsd: 0.35, CarbonKgCo2e: 4.8, Aliases: []string{"eggs", "large egg", "large eggs"}},
	{Name: "tofu", Category: "protein", WeightKg: 0.20, CostUsd: 2.50, CarbonKgCo2e: 2.0, Aliases: []string{"firm tofu", "silken tofu", "extra firm tofu"}},
	{Name: "tempeh", Category: "protein", WeightKg: 0.20, CostUsd: 3.50, CarbonKgCo2e: 1.0},
	{Name: "black beans", Category: "protein", WeightKg: 0.25, CostUsd: 1.50, CarbonKgCo2e: 0.8, Aliases: []string{"canned black beans"}},
	{Name: "chickpeas", Category: "protein", WeightKg: 0.25, CostUsd: 1.50, CarbonKgCo2e: 0.8, Aliases: []string{"garbanzo beans", "canned chickpeas"}},
	{Name: "lentils", Category: "protein", WeightKg: 0.20, CostUsd: 2.00, CarbonKgCo2e: 0.9, Aliases: []string{"red lentils", "green lentils", "brown lentils"}},

	// dairy
	{Name: "milk", Category: "dairy", WeightKg: 0.24, CostUsd: 0.50, CarbonKgCo2e: 3.2, Aliases: []string{"whole milk", "skim milk", "2% milk"}},
	{Name: "cheese", Category: "dairy", WeightKg: 0.10, CostUsd: 2.00, CarbonKgCo2e: 13.5, Aliases: []string{"cheddar", "cheddar cheese", "swiss cheese", "mozzarella"}},
	{Name: "parmesan", Category: "dairy", WeightKg: 0.05, CostUsd: 1.50, CarbonKgCo2e: 13.5, Aliases: []string{"parmesan cheese", "parmigiano reggiano", "grated parmesan"}},
	{Name: "butter", Category: "dairy", WeightKg: 0.05, CostUsd: 0.75, CarbonKgCo2e: 12.0, Aliases: []string{"unsalted butter", "salted butter"}},
	{Name: "cream", Category: "dairy", WeightKg: 0.12, CostUsd: 1.50, CarbonKgCo2e: 4.5, Aliases: []string{"heavy cream", "whipping cream", "half and half"}},
	{Name: "yogurt", Category: "dairy", WeightKg: 0.17, CostUsd: 1.25, CarbonKgCo2e: 2.5, Aliases: []string{"greek yogurt", "plain yogurt"}},
	{Name: "sour cream", Category: "dairy", WeightKg: 0.12, CostUsd: 1.50, CarbonKgCo2e: 3.0},
	{Name: "cream cheese", Category: "dairy", WeightKg: 0.10, CostUsd: 2.00, CarbonKgCo2e: 8.0, Aliases: []string{"philadelphia"}},

	// grains and starches
	{Name: "rice", Category: "grains", WeightKg: 0.18, CostUsd: 0.50, CarbonKgCo2e: 4.0, Aliases: []string{"white rice", "brown rice", "jasmine rice", "basmati rice"}},
	{Name: "pasta", Category: "grains", WeightKg: 0.15, CostUsd: 0.75, CarbonKgCo2e: 1.5, Aliases: []string{"spaghetti", "penne", "linguine", "fettuccine", "macaroni"}},
	{Name: "bread", Category: "grains", WeightKg: 0.05, CostUsd: 0.30, CarbonKgCo2e: 1.5, Aliases: []string{"white bread", "whole wheat bread", "bread slice", "bread slices"}},
	{Name: "flour", Category: "grains", WeightKg: 0.12, CostUsd: 0.25, CarbonKgCo2e: 0.7, Aliases: []string{"all-purpose flour", "wheat flour", "whole wheat flour"}},
	{Name: "oats", Category: "grains", WeightKg: 0.08, CostUsd: 0.40, CarbonKgCo2e: 1.0, Aliases: []string{"rolled oats", "oatmeal", "steel cut oats"}},
	{Name: "quinoa", Category: "grains", WeightKg: 0.17, CostUsd: 2.00, CarbonKgCo2e: 1.2},
	{Name: "tortilla", Category: "grains", WeightKg: 0.04, CostUsd: 0.30, CarbonKgCo2e: 1.2, Aliases: []string{"tortillas", "flour tortilla", "corn tortilla", "wrap"}},
	{Name: "noodles", Category: "grains", WeightKg: 0.15, CostUsd: 1.00, CarbonKgCo2e: 1.5, Aliases: []string{"egg noodles", "rice noodles", "ramen noodles", "udon"}},

	// condiments and oils
	{Name: "olive oil", Category: "condiments", WeightKg: 0.015, CostUsd: 0.30, CarbonKgCo2e: 3.5, Aliases: []string{"extra virgin olive oil", "evoo"}},
	{Name: "vegetable oil", Category: "condiments", WeightKg: 0.015, CostUsd: 0.10, CarbonKgCo2e: 3.0, Aliases: []string{"canola oil", "cooking oil"}},
	{Name: "soy sauce", Category: "condiments", WeightKg: 0.015, CostUsd: 0.15, CarbonKgCo2e: 1.0, Aliases: []string{"soya sauce", "tamari"}},
	{Name: "ketchup", Category: "condiments", WeightKg: 0.02, CostUsd: 0.10, CarbonKgCo2e: 1.5, Aliases: []string{"tomato ketchup", "catsup"}},
	{Name: "mustard", Category: "condiments", WeightKg: 0.015, CostUsd: 0.10, CarbonKgCo2e: 0.8, Aliases: []string{"dijon mustard", "yellow mustard"}},
	{Name: "mayonnaise", Category: "condiments", WeightKg: 0.015, CostUsd: 0.15, CarbonKgCo2e: 2.5, Aliases: []string{"mayo"}},
	{Name: "honey", Category: "condiments", WeightKg: 0.02, CostUsd: 0.30, CarbonKgCo2e: 0.5},
	{Name: "sugar", Category: "condiments", WeightKg: 0.015, CostUsd: 0.05, CarbonKgCo2e: 1.0, Aliases: []string{"white sugar", "brown sugar", "granulated sugar"}},
	{Name: "salt", Category: "condiments", WeightKg: 0.005, CostUsd: 0.02, CarbonKgCo2e: 0.1, Aliases: []string{"table salt", "sea salt", "kosher salt"}},
	{Name: "pepper", Category: "condiments", WeightKg: 0.002, CostUsd: 0.05, CarbonKgCo2e: 0.5, Aliases: []string{"black pepper", "ground pepper"}},
	{Name: "vinegar", Category: "condiments", WeightKg: 0.015, CostUsd: 0.10, CarbonKgCo2e: 0.5, Aliases: []string{"white vinegar", "apple cider vinegar", "balsamic vinegar", "rice vinegar"}},
	{Name: "tomato sauce", Category: "condiments", WeightKg: 0.12, CostUsd: 1.00, CarbonKgCo2e: 1.5, Aliases: []string{"marinara sauce", "pasta sauce", "tomato paste"}},

	// herbs and spices
	{Name: "basil", Category: "produce", WeightKg: 0.01, CostUsd: 0.50, CarbonKgCo2e: 0.3, Aliases: []string{"fresh basil", "basil leaves"}},
	{Name: "cilantro", Category: "produce", WeightKg: 0.03, CostUsd: 0.75, CarbonKgCo2e: 0.3, Aliases: []string{"fresh cilantro", "coriander"}},
	{Name: "parsley", Category: "produce", WeightKg: 0.03, CostUsd: 0.75, CarbonKgCo2e: 0.3, Aliases: []string{"fresh parsley", "italian parsley"}},
	{Name: "ginger", Category: "produce", WeightKg: 0.05, CostUsd: 0.50, CarbonKgCo2e: 0.5, Aliases: []string{"fresh ginger", "ginger root"}},
	{Name: "rosemary", Category: "produce", WeightKg: 0.01, CostUsd: 0.50, CarbonKgCo2e: 0.3, Aliases: []string{"fresh rosemary"}},
	{Name: "thyme", Category: "produce", WeightKg: 0.01, CostUsd: 0.50, CarbonKgCo2e: 0.3, Aliases: []string{"fresh thyme"}},

	// nuts and seeds
	{Name: "almonds", Category: "other", WeightKg: 0.03, CostUsd: 0.75, CarbonKgCo2e: 2.3, Aliases: []string{"almond", "sliced almonds"}},
	{Name: "peanuts", Category: "other", WeightKg: 0.03, CostUsd: 0.40, CarbonKgCo2e: 1.2, Aliases: []string{"peanut", "roasted peanuts"}},
	{Name: "walnuts", Category: "other", WeightKg: 0.03, CostUsd: 1.00, CarbonKgCo2e: 1.0, Aliases: []string{"walnut", "walnut pieces"}},
	{Name: "peanut butter", Category: "other", WeightKg: 0.03, CostUsd: 0.50, CarbonKgCo2e: 1.2},
}
