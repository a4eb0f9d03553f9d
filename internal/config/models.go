package config

// SignupURL is where users create a Gemini API key
const SignupURL = "https://aistudio.google.com/app/apikey"

const DefaultModel = "gemini-2.0-flash"

type ModelInfo struct {
	ID          string
	Name        string
	Description string
}

var Models = []ModelInfo{
	{
		ID:          "gemini-2.0-flash",
		Name:        "Gemini 2.0 Flash",
		Description: "Fast, default",
	},
	{
		ID:          "gemini-2.0-flash-lite",
		Name:        "Gemini 2.0 Flash-Lite",
		Description: "Cheapest, lowest latency",
	},
	{
		ID:          "gemini-1.5-flash",
		Name:        "Gemini 1.5 Flash",
		Description: "Previous generation, fast",
	},
	{
		ID:          "gemini-1.5-pro",
		Name:        "Gemini 1.5 Pro",
		Description: "Previous generation, most capable",
	},
}

func GetModel(id string) *ModelInfo {
	for _, m := range Models {
		if m.ID == id {
			return &m
		}
	}
	return nil
}

// ModelIndex returns the position of id in Models, or 0 if unknown
func ModelIndex(id string) int {
	for i, m := range Models {
		if m.ID == id {
			return i
		}
	}
	return 0
}
