package services

import (
	"strings"

	"github.com/migranthealth/careconnect/internal/domain/entities"
	"golang.org/x/text/unicode/norm"
)

// IntentRule is one voice intent with its trigger phrases.
type IntentRule struct {
	Intent       entities.Intent
	Action       string
	ResponseText string
	Phrases      []string
}

// HelpText is returned when no intent matches.
const HelpText = `I can help you with:
- "Show my records" to open your health records
- "Show my prescriptions" to see your medicines
- "Book an appointment" to find a doctor
- "Open my profile" to view your details
- "Set a reminder" for your medicines`

// DefaultIntents lists the voice intents in match priority order.
func DefaultIntents() []IntentRule {
	return []IntentRule{
		{
			Intent:       entities.IntentOpenRecords,
			Action:       "Records",
			ResponseText: "Opening your health records.",
			Phrases:      []string{"record", "report", "रिकॉर्ड", "रिपोर्ट"},
		},
		{
			Intent:       entities.IntentOpenPrescriptions,
			Action:       "Prescriptions",
			ResponseText: "Opening your prescriptions.",
			Phrases:      []string{"prescription", "medicine", "दवा", "दवाई", "पर्चा"},
		},
		{
			Intent:       entities.IntentBookAppointment,
			Action:       "BookAppointment",
			ResponseText: "Let's book an appointment with a doctor.",
			Phrases:      []string{"appointment", "book", "doctor", "अपॉइंटमेंट", "डॉक्टर"},
		},
		{
			Intent:       entities.IntentOpenProfile,
			Action:       "Profile",
			ResponseText: "Opening your profile.",
			Phrases:      []string{"profile", "my details", "प्रोफाइल", "मेरी जानकारी"},
		},
		{
			Intent:       entities.IntentSetReminder,
			Action:       "Reminders",
			ResponseText: "Opening medicine reminders.",
			Phrases:      []string{"remind", "alarm", "याद", "रिमाइंडर"},
		},
	}
}

// IntentMatcher maps free text to an intent by plain substring containment.
// The first rule, in order, with any phrase contained in the utterance wins,
// so short phrases inside unrelated sentences still trigger.
type IntentMatcher struct {
	rules []IntentRule
}

// NewIntentMatcher normalises phrases once. Rule order is match priority.
func NewIntentMatcher(rules []IntentRule) *IntentMatcher {
	m := &IntentMatcher{rules: make([]IntentRule, len(rules))}
	for i, r := range rules {
		phrases := make([]string, 0, len(r.Phrases))
		for _, p := range r.Phrases {
			if p = normalizeUtterance(p); p != "" {
				phrases = append(phrases, p)
			}
		}
		r.Phrases = phrases
		m.rules[i] = r
	}
	return m
}

// Match returns the winning intent, or help when nothing matches.
func (m *IntentMatcher) Match(utterance string) entities.IntentMatch {
	text := normalizeUtterance(utterance)
	if text != "" {
		for _, r := range m.rules {
			for _, p := range r.Phrases {
				if strings.Contains(text, p) {
					return entities.IntentMatch{Intent: r.Intent, Action: r.Action, ResponseText: r.ResponseText}
				}
			}
		}
	}
	return entities.IntentMatch{Intent: entities.IntentHelp, ResponseText: HelpText}
}

// normalizeUtterance composes Devanagari input so that decomposed and
// precomposed forms of the same text compare equal.
func normalizeUtterance(s string) string {
	return strings.ToLower(strings.TrimSpace(norm.NFC.String(s)))
}
