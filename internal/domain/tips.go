package domain

// WellnessTip is a static advice card shown in the tips section.
type WellnessTip struct {
	Icon        string `json:"icon"`
	Color       string `json:"color"`
	Title       string `json:"title"`
	Description string `json:"desc"`
}

var wellnessTips = []WellnessTip{
	{Icon: "droplets", Color: "blue", Title: "Hydration First", Description: "Drinking 8 glasses of water maintains energy and brain function."},
	{Icon: "moon", Color: "indigo", Title: "Quality Sleep", Description: "7-9 hours of sleep is crucial for muscle repair and memory consolidation."},
	{Icon: "utensils", Color: "green", Title: "Protein Power", Description: "Include protein in every meal to maintain muscle mass and satiety."},
	{Icon: "heart-pulse", Color: "red", Title: "Cardio Health", Description: "150 mins of moderate aerobic activity a week strengthens your heart."},
	{Icon: "sun", Color: "orange", Title: "Vitamin D", Description: "Get 15 mins of morning sunlight to boost mood and bone health."},
	{Icon: "brain", Color: "pink", Title: "Mental Check", Description: "5 mins of meditation daily reduces cortisol (stress) levels."},
	{Icon: "dumbbell", Color: "purple", Title: "Strength Training", Description: "Lift weights 2x a week to improve bone density and metabolism."},
	{Icon: "apple", Color: "red", Title: "Limit Sugar", Description: "Reducing processed sugar lowers risk of diabetes and fatigue."},
	{Icon: "footprints", Color: "teal", Title: "Keep Moving", Description: "Aim for 10,000 steps a day to keep your metabolism active."},
	{Icon: "carrot", Color: "orange", Title: "Fiber Intake", Description: "Vegetables and whole grains improve digestion and gut health."},
	{Icon: "smile", Color: "yellow", Title: "Social Connection", Description: "Strong relationships boost longevity and mental well-being."},
	{Icon: "smartphone-off", Color: "gray", Title: "Digital Detox", Description: "Avoid screens 1 hour before bed for better sleep quality."},
}

// WellnessTips returns a copy of the tip list.
func WellnessTips() []WellnessTip {
	tips := make([]WellnessTip, len(wellnessTips))
	copy(tips, wellnessTips)
	return tips
}
