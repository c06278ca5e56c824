package notify

import "encoding/json"

// Variant selects the toast styling
type Variant string

const (
	VariantDefault     Variant = "default"
	VariantDestructive Variant = "destructive"
)

// Toast is a fire-and-forget notification shown to one visitor
type Toast struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Variant     Variant `json:"variant"`
}

// IsDestructive reports whether the toast renders as an error
func (t Toast) IsDestructive() bool {
	return t.Variant == VariantDestructive
}

// Event renders the toast as an SSE event
func (t Toast) Event() Event {
	data, _ := json.Marshal(t)
	return Event{EventType: "toast", Data: string(data)}
}

func JoinedCampaign() Toast {
	return Toast{
		Title:       "Successfully joined!",
		Description: "Submitted successfully! We'll notify you once approved.",
		Variant:     VariantDefault,
	}
}

func JoinFailed() Toast {
	return Toast{
		Title:       "Error",
		Description: "Failed to join campaign. Please try again.",
		Variant:     VariantDestructive,
	}
}

func ContactSent(supplierName string) Toast {
	return Toast{
		Title:       "Contact Request Sent",
		Description: "Your message has been sent to " + supplierName + ". They'll get back to you soon!",
		Variant:     VariantDefault,
	}
}

func JoinedGroupBuy() Toast {
	return Toast{
		Title:       "Joined Group Buy!",
		Description: "You've successfully joined the group buy. We'll notify you when it reaches the target.",
		Variant:     VariantDefault,
	}
}
