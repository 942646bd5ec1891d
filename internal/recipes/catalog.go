package recipes

var builtin = []Recipe{
	{
		ID: 1, Name: "Dal Makhani", Region: "North", State: "Punjab", Category: "Dal",
		Difficulty: "Medium", TimeMinutes: 90, Servings: 4, Rating: 4.8, Calories: 320,
		Tags:            []string{"Vegetarian", "Protein-rich", "Comfort food"},
		Description:     "Slow cooked black lentils finished with butter and cream.",
		SpiceLevel:      "Medium",
		MainIngredients: []string{"Black lentils", "Kidney beans", "Butter", "Cream", "Tomato"},
	},
	{
		ID: 2, Name: "Palak Paneer", Region: "North", State: "Punjab", Category: "Curry",
		Difficulty: "Easy", TimeMinutes: 35, Servings: 4, Rating: 4.7, Calories: 280,
		Tags:            []string{"Vegetarian", "Iron-rich", "Gluten-Free"},
		Description:     "Paneer cubes in a smooth spiced spinach gravy.",
		SpiceLevel:      "Mild",
		MainIngredients: []string{"Spinach", "Paneer", "Onion", "Garlic", "Cream"},
	},
	{
		ID: 3, Name: "Masala Dosa", Region: "South", State: "Karnataka", Category: "Snacks",
		Difficulty: "Hard", TimeMinutes: 45, Servings: 4, Rating: 4.9, Calories: 350,
		Tags:            []string{"Vegetarian", "Fermented", "Breakfast"},
		Description:     "Crisp rice and lentil crepe filled with spiced potato.",
		SpiceLevel:      "Medium",
		MainIngredients: []string{"Rice", "Urad dal", "Potato", "Mustard seeds", "Curry leaves"},
	},
	{
		ID: 4, Name: "Sambar Rice", Region: "South", State: "Tamil Nadu", Category: "Rice",
		Difficulty: "Easy", TimeMinutes: 40, Servings: 4, Rating: 4.5, Calories: 380,
		Tags:            []string{"Vegetarian", "One-pot", "Gluten-Free"},
		Description:     "Rice cooked together with tamarind lentil stew and vegetables.",
		SpiceLevel:      "Medium",
		MainIngredients: []string{"Rice", "Toor dal", "Tamarind", "Drumstick", "Sambar powder"},
	},
	{
		ID: 5, Name: "Hyderabadi Veg Biryani", Region: "South", State: "Telangana", Category: "Rice",
		Difficulty: "Hard", TimeMinutes: 75, Servings: 6, Rating: 4.6, Calories: 450,
		Tags:            []string{"Vegetarian", "Festive", "Dum cooked"},
		Description:     "Layered basmati rice and vegetables sealed and slow cooked.",
		SpiceLevel:      "Spicy",
		MainIngredients: []string{"Basmati rice", "Mixed vegetables", "Yogurt", "Saffron", "Fried onion"},
	},
	{
		ID: 6, Name: "Macher Jhol", Region: "East", State: "West Bengal", Category: "Curry",
		Difficulty: "Medium", TimeMinutes: 40, Servings: 4, Rating: 4.6, Calories: 300,
		Tags:            []string{"Fish", "Light", "Gluten-Free"},
		Description:     "Light Bengali fish curry with potatoes and panch phoron.",
		SpiceLevel:      "Medium",
		MainIngredients: []string{"Rohu fish", "Potato", "Mustard oil", "Turmeric", "Panch phoron"},
	},
	{
		ID: 7, Name: "Rasgulla", Region: "East", State: "Odisha", Category: "Sweets",
		Difficulty: "Medium", TimeMinutes: 60, Servings: 8, Rating: 4.7, Calories: 186,
		Tags:            []string{"Vegetarian", "Dessert", "Festive"},
		Description:     "Soft chenna dumplings soaked in light sugar syrup.",
		SpiceLevel:      "Mild",
		MainIngredients: []string{"Milk", "Chenna", "Sugar", "Cardamom"},
	},
	{
		ID: 8, Name: "Dhokla", Region: "West", State: "Gujarat", Category: "Snacks",
		Difficulty: "Easy", TimeMinutes: 30, Servings: 4, Rating: 4.5, Calories: 160,
		Tags:            []string{"Vegetarian", "Steamed", "Jain"},
		Description:     "Steamed savoury gram flour cake tempered with mustard seeds.",
		SpiceLevel:      "Mild",
		MainIngredients: []string{"Gram flour", "Yogurt", "Ginger", "Green chilies", "Mustard seeds"},
	},
	{
		ID: 9, Name: "Pav Bhaji", Region: "West", State: "Maharashtra", Category: "Snacks",
		Difficulty: "Easy", TimeMinutes: 40, Servings: 4, Rating: 4.7, Calories: 400,
		Tags:            []string{"Vegetarian", "Street food"},
		Description:     "Buttery mashed vegetable curry served with toasted pav.",
		SpiceLevel:      "Spicy",
		MainIngredients: []string{"Potato", "Mixed vegetables", "Pav bread", "Butter", "Pav bhaji masala"},
	},
	{
		ID: 10, Name: "Bhindi Masala", Region: "North", Category: "Sabzi",
		Difficulty: "Easy", TimeMinutes: 25, Servings: 3, Rating: 4.3, Calories: 150,
		Tags:            []string{"Vegetarian", "Vegan", "Dry"},
		Description:     "Okra stir-fried with onion, tomato and dry spices.",
		SpiceLevel:      "Medium",
		MainIngredients: []string{"Okra", "Onion", "Tomato", "Amchur", "Coriander powder"},
	},
	{
		ID: 11, Name: "Aloo Paratha", Region: "North", State: "Punjab", Category: "Bread",
		Difficulty: "Medium", TimeMinutes: 35, Servings: 4, Rating: 4.8, Calories: 300,
		Tags:            []string{"Vegetarian", "Breakfast", "Stuffed"},
		Description:     "Whole wheat flatbread stuffed with spiced potato.",
		SpiceLevel:      "Mild",
		MainIngredients: []string{"Wheat flour", "Potato", "Ghee", "Green chilies", "Coriander"},
	},
	{
		ID: 12, Name: "Avial", Region: "South", State: "Kerala", Category: "Sabzi",
		Difficulty: "Medium", TimeMinutes: 35, Servings: 4, Rating: 4.4, Calories: 210,
		Tags:            []string{"Vegetarian", "Sattvic", "Gluten-Free"},
		Description:     "Mixed vegetables in coconut and yogurt with coconut oil.",
		SpiceLevel:      "Mild",
		MainIngredients: []string{"Mixed vegetables", "Coconut", "Yogurt", "Curry leaves", "Coconut oil"},
	},
	{
		ID: 13, Name: "Chana Masala", Region: "North", Category: "Curry",
		Difficulty: "Easy", TimeMinutes: 45, Servings: 4, Rating: 4.6, Calories: 270,
		Tags:            []string{"Vegetarian", "Vegan", "Protein-rich"},
		Description:     "Chickpeas simmered in a tangy onion tomato masala.",
		SpiceLevel:      "Spicy",
		MainIngredients: []string{"Chickpeas", "Onion", "Tomato", "Chana masala", "Ginger"},
	},
	{
		ID: 14, Name: "Moong Dal Tadka", Region: "West", State: "Rajasthan", Category: "Dal",
		Difficulty: "Easy", TimeMinutes: 25, Servings: 4, Rating: 4.4, Calories: 200,
		Tags:            []string{"Vegetarian", "Light", "Gluten-Free"},
		Description:     "Yellow lentils tempered with cumin, ghee and dried chili.",
		SpiceLevel:      "Mild",
		MainIngredients: []string{"Moong dal", "Cumin", "Ghee", "Turmeric", "Dried red chili"},
	},
}
