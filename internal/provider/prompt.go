package provider

import "strings"

// imagePlaceholder is substituted in OCR prompt templates.
const imagePlaceholder = "{image_data}"

// FormatPrompt substitutes the {image_data} placeholder in basePrompt and
// appends an instruction section carrying the expected JSON shape. Pure.
func FormatPrompt(basePrompt, jsonExample, imageData string) string {
	prompt := strings.ReplaceAll(basePrompt, imagePlaceholder, imageData)

	var b strings.Builder
	b.WriteString(prompt)
	if jsonExample != "" {
		b.WriteString("\n\nReturn ONLY a JSON object matching this example shape:\n")
		b.WriteString(jsonExample)
		b.WriteString("\nDo not include any explanation or extra text.")
	}
	return b.String()
}
