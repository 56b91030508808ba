package health

// Bracket is a BMI classification band. The four bands are disjoint and
// cover the whole range.
type Bracket string

const (
	BracketUnderweight Bracket = "underweight"
	BracketHealthy     Bracket = "healthy"
	BracketOverweight  Bracket = "overweight"
	BracketObese       Bracket = "obese"
)

// BracketFor classifies a BMI value.
func BracketFor(bmi float64) Bracket {
	switch {
	case bmi < 18.5:
		return BracketUnderweight
	case bmi < 25:
		return BracketHealthy
	case bmi < 30:
		return BracketOverweight
	default:
		return BracketObese
	}
}

// Advice carries the three qualitative advice strings rendered into the
// health report for a BMI bracket.
type Advice struct {
	PhysicalHealth string
	MentalWellness string
	NutritionTips  string
}

var adviceByBracket = map[Bracket]Advice{
	BracketUnderweight: {
		PhysicalHealth: "Your BMI indicates you're underweight. Focus on gaining weight in a healthy way through a balanced diet and strength training exercises.",
		MentalWellness: "Being underweight can affect your mood and energy levels. Ensure you're getting proper nutrition and consider talking to a healthcare provider.",
		NutritionTips:  "Aim to increase your calorie intake with nutrient-dense foods. Include healthy fats, proteins, and complex carbohydrates in your diet.",
	},
	BracketHealthy: {
		PhysicalHealth: "Your BMI indicates you're at a healthy weight. Maintain your current lifestyle with a balanced diet and regular exercise.",
		MentalWellness: "Regular exercise and a balanced diet can boost your mood and cognitive function. Consider incorporating stress-reduction activities into your routine.",
		NutritionTips:  "Continue with a balanced diet rich in fruits, vegetables, whole grains, lean proteins, and healthy fats.",
	},
	BracketOverweight: {
		PhysicalHealth: "Your BMI indicates you're overweight. Consider increasing physical activity and making dietary changes to reach a healthier weight.",
		MentalWellness: "Regular exercise can improve mood and reduce stress. Focus on finding physical activities you enjoy.",
		NutritionTips:  "Focus on portion control and increasing your intake of fruits, vegetables, and whole grains. Limit processed foods and sugary drinks.",
	},
	BracketObese: {
		PhysicalHealth: "Your BMI indicates obesity. It's important to work with healthcare providers to develop a plan for reaching a healthier weight through diet and exercise.",
		MentalWellness: "Your weight may be affecting your mental health. Consider seeking support from a mental health professional along with making lifestyle changes.",
		NutritionTips:  "Work with a nutritionist to develop a balanced, calorie-controlled diet. Focus on whole foods and avoid processed, high-calorie options.",
	},
}

// AdviceFor returns the advice strings for a BMI value.
func AdviceFor(bmi float64) Advice {
	return adviceByBracket[BracketFor(bmi)]
}
