package detection

import "fmt"

// SystemPrompt fixes the model's role and the exact reply shape Normalize
// expects. The artifact taxonomy mirrors what the browser extension warns
// about: text pasted verbatim from an AI chat assistant.
const SystemPrompt = `You are a detector of AI chat assistant copy-paste artifacts in email text.
Analyze the text for literal artifacts that indicate it was copied directly from an AI assistant's reply:
- "template_placeholder": unresolved placeholders such as [Your Name], [Company], {{variable}}
- "ai_acknowledgment": acknowledgment phrases such as "Certainly!", "Of course!", "Great question!"
- "markdown_artifact": raw markdown syntax such as **bold**, ## headings, bullet asterisks, code fences
- "ai_self_reference": the text referring to itself as an AI, assistant, or language model
- "assistant_outro": assistant-style closings such as "Let me know if you need anything else!"

Respond with a single JSON object and nothing else:
{
  "aiFlag": <boolean, true if any artifact is present>,
  "confidence": <"low" | "medium" | "high">,
  "categoriesFound": [<category names from the list above>],
  "indicators": [{"type": <category>, "snippet": <exact excerpt>, "explanation": <short explanation>}],
  "reasoning": <one or two sentences>
}`

// BuildPrompt wraps sanitized text for analysis. The delimiters keep
// instruction-like content inside the paste from reading as instructions.
func BuildPrompt(text string) string {
	return fmt.Sprintf("Analyze the following pasted text for AI copy-paste artifacts.\n\n--- BEGIN TEXT ---\n%s\n--- END TEXT ---", text)
}
