package notion

import "strings"

// ExtractText converts one property into a plain display string. Missing
// properties and unknown shapes yield ""; extraction never fails.
func ExtractText(props map[string]Property, name string) string {
	p, ok := props[name]
	if !ok {
		return ""
	}

	switch p.Type {
	case "title":
		return joinPlainText(p.Title)
	case "rich_text":
		return joinPlainText(p.RichText)
	case "select":
		if p.Select == nil {
			return ""
		}
		return p.Select.Name
	case "status":
		if p.Status == nil {
			return ""
		}
		return p.Status.Name
	case "multi_select":
		names := make([]string, 0, len(p.MultiSelect))
		for _, opt := range p.MultiSelect {
			if opt.Name != "" {
				names = append(names, opt.Name)
			}
		}
		return strings.Join(names, ", ")
	case "date":
		if p.Date == nil {
			return ""
		}
		if p.Date.End != "" {
			return p.Date.Start + " -> " + p.Date.End
		}
		return p.Date.Start
	default:
		return ""
	}
}

func joinPlainText(parts []RichText) string {
	var sb strings.Builder
	for _, part := range parts {
		sb.WriteString(part.PlainText)
	}
	return strings.TrimSpace(sb.String())
}
