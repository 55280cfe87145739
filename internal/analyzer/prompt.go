package analyzer

import "fmt"

const promptTemplate = `You are a network security expert analyzing log data. Please provide a detailed explanation of the following network log:

%s

In your analysis, include:
1. What type of attack or anomaly is shown in the log
2. Explanation of each field in the log
3. The severity and potential impact of this activity
4. Recommended actions to mitigate this type of attack
5. Any additional context that would help understand this security event`

// BuildPrompt wraps sanitized log data in the fixed analysis template.
func BuildPrompt(logData string) string {
	return fmt.Sprintf(promptTemplate, logData)
}
