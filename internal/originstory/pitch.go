package originstory

import (
	"fmt"
	"strings"
)

// pitchTemplates maps stream keys to their "why this fits you" builders.
// Streams without a dedicated template get the generic one.
var pitchTemplates = map[string]func(name, careers, interests string) string{
	"computer_science": func(name, careers, interests string) string {
		return fmt.Sprintf("You love logic, problem-solving, and tech — %s turns that into a superpower. With careers like %s, you'll build the tools millions use daily. Your interest in %s aligns perfectly with the tech world.", name, careers, interests)
	},
	"mechanical_engineering": func(name, careers, _ string) string {
		return fmt.Sprintf("You're a builder at heart. %s lets you design, prototype, and create real things — from drones to electric cars. Careers like %s await. Your hands-on nature is your biggest asset.", name, careers)
	},
	"medicine": func(name, careers, _ string) string {
		return fmt.Sprintf("Your empathy and love for biology make you a natural healer. %s is tough but incredibly rewarding — you'll literally save lives. Careers like %s are among the most respected globally.", name, careers)
	},
	"business_management": func(name, careers, interests string) string {
		return fmt.Sprintf("You're a people person with strategic instincts. %s channels your communication and leadership skills into high-impact roles like %s. Your interest in %s shows entrepreneurial potential.", name, careers, interests)
	},
	"data_science": func(name, careers, _ string) string {
		return fmt.Sprintf("You see patterns where others see chaos. %s combines math, coding, and curiosity into one of the fastest-growing fields. Careers like %s are in massive demand.", name, careers)
	},
	"design_arts": func(name, careers, _ string) string {
		return fmt.Sprintf("Your creativity isn't just a hobby — it's a career advantage. %s turns your visual sense and empathy into experiences used by millions. Roles like %s offer creative freedom and impact.", name, careers)
	},
	"electrical_engineering": func(name, careers, _ string) string {
		return fmt.Sprintf("You're fascinated by how things work at a fundamental level. %s is the backbone of modern civilization — power grids, robots, phones all depend on it. Careers like %s are always in demand.", name, careers)
	},
	"biotechnology": func(name, careers, _ string) string {
		return fmt.Sprintf("You're curious about life at a molecular level. %s is at the frontier of CRISPR, mRNA, and personalized medicine. Careers like %s let you shape the future of healthcare.", name, careers)
	},
}

// defaultInterests is substituted when the user listed no interests.
const defaultInterests = "your passions"

// GeneratePitch builds the personalized justification line for a
// recommended stream. Pure string formatting: the only branching is the
// template lookup and the empty-interests default.
func GeneratePitch(stream *Stream, interests []string) string {
	careersStr := joinFirst(stream.Careers, 3)

	interestsStr := defaultInterests
	if cleaned := cleanInterests(interests, 3); len(cleaned) > 0 {
		interestsStr = strings.Join(cleaned, ", ")
	}

	if tmpl, ok := pitchTemplates[stream.ID]; ok {
		return tmpl(stream.Name, careersStr, interestsStr)
	}
	return fmt.Sprintf("Based on your profile, %s is a strong match! With careers like %s and your interest in %s, this path offers both growth and fulfilment.", stream.Name, careersStr, interestsStr)
}

func joinFirst(values []string, n int) string {
	if len(values) > n {
		values = values[:n]
	}
	return strings.Join(values, ", ")
}

func cleanInterests(interests []string, n int) []string {
	out := make([]string, 0, n)
	for _, raw := range interests {
		trimmed := strings.TrimSpace(strings.TrimLeft(strings.TrimSpace(raw), "#"))
		if trimmed == "" {
			continue
		}
		out = append(out, trimmed)
		if len(out) == n {
			break
		}
	}
	return out
}
