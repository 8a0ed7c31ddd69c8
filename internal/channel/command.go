package channel

import "strings"

// Usage is sent when a chat message does not match any command.
const Usage = "I can show you tourist attractions. Try one of:\n" +
	"/attractions — everything I know about\n" +
	"/natural, /historical, /cultural, /artificial — by category\n" +
	"/name <attraction> — details for one attraction\n" +
	"/city <city> — attractions in a city"

// ParseCommand maps a slash-style chat command to the intent it
// stands for. The conversational platform does this classification
// for webhook traffic; direct channels get this fixed command set
// instead. The leading slash is optional and matching is
// case-insensitive.
func ParseCommand(content string) (intentName string, params map[string]string, ok bool) {
	content = strings.TrimSpace(content)
	if content == "" {
		return "", nil, false
	}

	cmd := content
	rest := ""
	if i := strings.IndexAny(content, " \t"); i >= 0 {
		cmd, rest = content[:i], strings.TrimSpace(content[i+1:])
	}
	cmd = strings.ToLower(strings.TrimPrefix(cmd, "/"))

	switch cmd {
	case "attractions", "all":
		return "Ask_All_Attractions", nil, true
	case "natural":
		return "Ask_Natural_Attractions", nil, true
	case "historical":
		return "Ask_Historical_Attractions", nil, true
	case "cultural":
		return "Ask_Cultural_Attractions", nil, true
	case "artificial":
		return "Ask_Artificial_Attractions", nil, true
	case "name":
		return "Ask_Attraction_ByName", map[string]string{"name": rest}, true
	case "city":
		return "Ask_Attraction_ByCity", map[string]string{"cityName": rest}, true
	default:
		return "", nil, false
	}
}
