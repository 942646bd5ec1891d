package mealplans

func meal(mealType, name string, calories int, at, region, method string, ingredients ...string) Meal {
	return Meal{
		Type:          mealType,
		Name:          name,
		Calories:      calories,
		Time:          at,
		Region:        region,
		Ingredients:   ingredients,
		CookingMethod: method,
	}
}

// BaseTemplate returns a fresh copy of the built-in seven day plan.
func BaseTemplate() MealPlan {
	return MealPlan{
		Days: []DayPlan{
			{
				Day:           "Monday",
				RegionalTheme: "North Indian",
				Meals: []Meal{
					meal("Breakfast", "Aloo Paratha with Dahi", 380, "8:00 AM", "Punjab", "Pan-fried",
						"Potato", "Wheat flour", "Yogurt", "Ghee", "Spices"),
					meal("Lunch", "Rajma Chawal with Salad", 520, "1:00 PM", "Punjab", "Pressure cooked",
						"Kidney beans", "Basmati rice", "Onion", "Tomato", "Spices"),
					meal("Dinner", "Palak Paneer with Roti", 420, "8:00 PM", "North India", "Sautéed",
						"Spinach", "Paneer", "Wheat flour", "Cream", "Spices"),
					meal("Snack", "Masala Chai with Marie Biscuits", 150, "4:00 PM", "All India", "Boiled",
						"Tea leaves", "Milk", "Sugar", "Cardamom", "Ginger"),
				},
			},
			{
				Day:           "Tuesday",
				RegionalTheme: "South Indian",
				Meals: []Meal{
					meal("Breakfast", "Idli Sambar with Coconut Chutney", 320, "8:00 AM", "Tamil Nadu", "Steamed",
						"Rice", "Urad dal", "Toor dal", "Coconut", "Curry leaves"),
					meal("Lunch", "Curd Rice with Pickle", 450, "1:00 PM", "South India", "Mixed",
						"Rice", "Yogurt", "Mustard seeds", "Curry leaves", "Pickle"),
					meal("Dinner", "Fish Curry with Rice", 480, "8:00 PM", "Kerala", "Curry",
						"Fish", "Coconut milk", "Rice", "Curry leaves", "Spices"),
					meal("Snack", "Filter Coffee with Murukku", 180, "4:00 PM", "Tamil Nadu", "Brewed",
						"Coffee powder", "Milk", "Sugar", "Rice flour", "Urad dal"),
				},
			},
			{
				Day:           "Wednesday",
				RegionalTheme: "Gujarati",
				Meals: []Meal{
					meal("Breakfast", "Dhokla with Green Chutney", 280, "8:00 AM", "Gujarat", "Steamed",
						"Gram flour", "Yogurt", "Ginger", "Green chilies", "Coriander"),
					meal("Lunch", "Gujarati Thali with Rotli", 580, "1:00 PM", "Gujarat", "Various",
						"Wheat flour", "Mixed vegetables", "Dal", "Rice", "Jaggery"),
					meal("Dinner", "Khichdi with Kadhi", 400, "8:00 PM", "Gujarat", "Boiled",
						"Rice", "Moong dal", "Yogurt", "Gram flour", "Turmeric"),
					meal("Snack", "Gujarati Farsan with Chai", 200, "4:00 PM", "Gujarat", "Fried",
						"Gram flour", "Spices", "Oil", "Tea", "Milk"),
				},
			},
			{
				Day:           "Thursday",
				RegionalTheme: "Bengali",
				Meals: []Meal{
					meal("Breakfast", "Luchi with Aloo Dum", 420, "8:00 AM", "Bengal", "Deep fried",
						"Refined flour", "Potato", "Panch phoron", "Oil", "Spices"),
					meal("Lunch", "Fish Curry with Steamed Rice", 520, "1:00 PM", "Bengal", "Curry",
						"Fish", "Mustard oil", "Rice", "Turmeric", "Nigella seeds"),
					meal("Dinner", "Kosha Mangsho with Luchi", 480, "8:00 PM", "Bengal", "Slow cooked",
						"Mutton", "Onion", "Yogurt", "Refined flour", "Garam masala"),
					meal("Snack", "Mishti Doi with Sandesh", 220, "4:00 PM", "Bengal", "Set",
						"Milk", "Sugar", "Jaggery", "Chenna", "Cardamom"),
				},
			},
			{
				Day:           "Friday",
				RegionalTheme: "Maharashtrian",
				Meals: []Meal{
					meal("Breakfast", "Poha with Sev", 300, "8:00 AM", "Maharashtra", "Sautéed",
						"Flattened rice", "Onion", "Peanuts", "Curry leaves", "Sev"),
					meal("Lunch", "Bhel Puri with Pav Bhaji", 550, "1:00 PM", "Maharashtra", "Mixed",
						"Puffed rice", "Mixed vegetables", "Pav bread", "Chutneys", "Spices"),
					meal("Dinner", "Varan Bhaat with Bhindi Sabzi", 450, "8:00 PM", "Maharashtra", "Boiled",
						"Toor dal", "Rice", "Okra", "Turmeric", "Mustard seeds"),
					meal("Snack", "Vada Pav with Chai", 280, "4:00 PM", "Maharashtra", "Deep fried",
						"Potato", "Gram flour", "Pav bread", "Green chutney", "Tea"),
				},
			},
			{
				Day:           "Saturday",
				RegionalTheme: "Punjabi",
				Meals: []Meal{
					meal("Breakfast", "Chole Bhature with Lassi", 520, "8:30 AM", "Punjab", "Deep fried",
						"Chickpeas", "Refined flour", "Yogurt", "Mango", "Spices"),
					meal("Lunch", "Butter Chicken with Naan", 620, "1:00 PM", "Punjab", "Curry",
						"Chicken", "Tomato", "Cream", "Refined flour", "Butter"),
					meal("Dinner", "Dal Makhani with Jeera Rice", 480, "8:00 PM", "Punjab", "Slow cooked",
						"Black lentils", "Kidney beans", "Rice", "Cream", "Cumin"),
					meal("Snack", "Samosa with Tamarind Chutney", 250, "4:00 PM", "North India", "Deep fried",
						"Refined flour", "Potato", "Peas", "Tamarind", "Spices"),
				},
			},
			{
				Day:           "Sunday",
				RegionalTheme: "Kerala",
				Meals: []Meal{
					meal("Breakfast", "Appam with Vegetable Stew", 350, "8:00 AM", "Kerala", "Fermented",
						"Rice", "Coconut", "Mixed vegetables", "Coconut milk", "Curry leaves"),
					meal("Lunch", "Sadya with Payasam", 650, "1:00 PM", "Kerala", "Traditional",
						"Rice", "Various curries", "Coconut", "Jaggery", "Cardamom"),
					meal("Dinner", "Karimeen Curry with Rice", 420, "8:00 PM", "Kerala", "Curry",
						"Pearl spot fish", "Coconut milk", "Rice", "Kokum", "Spices"),
					meal("Snack", "Banana Chips with Coconut Water", 180, "4:00 PM", "Kerala", "Deep fried",
						"Raw banana", "Coconut oil", "Salt", "Turmeric", "Coconut water"),
				},
			},
		},
		TotalCalories:    2100,
		Macros:           Macros{Protein: 85, Carbs: 280, Fat: 65, Fiber: 35},
		AyurvedicBalance: "Balanced across all doshas with regional variety",
	}
}
