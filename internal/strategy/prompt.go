package strategy

// systemPrompt is the fixed role description for the remote model.
const systemPrompt = `You are a senior software engineer who breaks development tasks into small, actionable steps. You always answer with JSON and nothing else.`

// userPromptTemplate embeds the task descriptor and the required output
// shape. Arguments: description, category, scope.
const userPromptTemplate = `Break the following development task into actionable steps.

Task: %s
Category: %s
Scope: %s

Return a JSON object with this exact structure (no other text):
{
  "steps": [
    {
      "id": 1,
      "title": "Short step title",
      "description": "What this step involves and why",
      "files": ["src/path/to/file.js"]
    }
  ]
}

Guidelines:
- Produce between 3 and 7 steps.
- Order steps so prerequisite artifacts come first: data models before controllers, controllers before routes, implementation before tests.
- Each step must have a concrete, non-empty title and description.
- files lists the candidate paths the step is expected to touch; use an empty array when no specific file applies.`
