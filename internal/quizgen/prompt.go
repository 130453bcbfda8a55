package quizgen

import (
	"fmt"
	"strings"
)

const systemPrompt = `You are a study assistant creating review questions from the learner's own documents.

Rules:
- Generate a single question grounded in the provided source passages. Never ask about material that is not in the passages.
- The question text should be clear, self-contained, and answerable without seeing the passages.
- For multiple-choice questions, provide exactly 4 options where exactly one is correct. Distractors should be plausible misreadings of the material, not random statements. The answer is the letter of the correct option.
- Include a short explanation of why the correct option is correct.
- For free-text questions, provide a model answer in full sentences and 2-5 key points a good answer should cover.
- Match the requested difficulty: "easy" questions test recall of stated facts, "medium" questions test understanding, "hard" questions require combining facts or reasoning about implications.
- Do not repeat any question from the "already asked" list.`

// buildUserMessage constructs the user message from GenerateInput and Config limits.
func buildUserMessage(input GenerateInput, cfg Config) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Question type: %s\n", input.Type)
	fmt.Fprintf(&b, "Difficulty: %s\n", input.Difficulty)
	if len(input.Topics) > 0 {
		fmt.Fprintf(&b, "Restrict to topics: %s\n", strings.Join(input.Topics, ", "))
	} else {
		b.WriteString("Topics: any topic covered by the passages\n")
	}

	b.WriteString("\nSource passages:\n")
	b.WriteString(buildPassages(input.Passages, cfg.MaxPassages))

	b.WriteString("\nAlready asked in this session:\n")
	b.WriteString(buildDedup(input.PriorQuestions, cfg.MaxPriorQuestions))

	return b.String()
}

// buildPassages formats retrieved passages for the prompt, respecting the max limit.
func buildPassages(passages []string, max int) string {
	if len(passages) == 0 {
		return "None"
	}
	if max > 0 && len(passages) > max {
		passages = passages[:max]
	}

	var b strings.Builder
	for i, p := range passages {
		fmt.Fprintf(&b, "[%d] %s\n", i+1, strings.TrimSpace(p))
	}
	return strings.TrimRight(b.String(), "\n")
}

// buildDedup formats prior questions for the prompt, respecting the max limit.
func buildDedup(prior []string, max int) string {
	if len(prior) == 0 {
		return "None"
	}

	// Keep only the most recent N questions.
	if max > 0 && len(prior) > max {
		prior = prior[len(prior)-max:]
	}

	var b strings.Builder
	for i, q := range prior {
		fmt.Fprintf(&b, "%d. %s\n", i+1, q)
	}
	return strings.TrimRight(b.String(), "\n")
}
