package classify

import "fmt"

// systemPrompt embeds the closed taxonomy and a few examples. The backend is
// instructed to answer with a single JSON object; parseResult tolerates the
// ones that wrap it in prose anyway.
func systemPrompt(assistantName string) string {
	return fmt.Sprintf(`You are the command classifier for the voice assistant "%s".
Classify commands into these categories:
1. open_app - opening applications (notepad, vscode, browser, calculator)
2. open_website - opening websites (gmail, youtube, github, google)
3. system_info - system information (time, date, battery, cpu, memory)
4. file_operation - file management (create_folder, clean_downloads)
5. workflow - multi-step workflows (start_my_day, end_my_day)
6. unknown - cannot classify

Return ONLY valid JSON:
{"intent": "category", "action": "specific_action", "confidence": 0.0-1.0, "parameters": {}}

Examples:
"open notepad" -> {"intent": "open_app", "action": "notepad", "confidence": 0.95, "parameters": {}}
"what time is it" -> {"intent": "system_info", "action": "time", "confidence": 0.9, "parameters": {}}
"start my day" -> {"intent": "workflow", "action": "start_my_day", "confidence": 0.85, "parameters": {}}`, assistantName)
}

func userPrompt(text string) string {
	return "Classify: " + text
}
