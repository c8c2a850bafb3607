package presentation

import "github.com/riskibarqy/football-center/internal/domain/match"

// StatusInfo is the badge shown for a match status.
type StatusInfo struct {
	Label      string `json:"label"`
	Icon       string `json:"icon"`
	Color      string `json:"color"`
	Background string `json:"background"`
}

type statusKind int

const (
	kindScheduled statusKind = iota
	kindLive
	kindInPlay
	kindPaused
	kindFinished
	kindPostponed
	kindSuspended
	kindCanceled
	statusKindCount
	kindUnknown statusKind = -1
)

const (
	fallbackIcon       = "⚽"
	fallbackColor      = "#95a5a6"
	fallbackBackground = "rgba(149, 165, 166, 0.2)"
)

type statusStyle struct {
	icon       string
	color      string
	background string
}

var statusStyles = [statusKindCount]statusStyle{
	kindScheduled: {icon: "📅", color: "#3498db", background: "rgba(52, 152, 219, 0.2)"},
	kindLive:      {icon: "🔴", color: "#e74c3c", background: "rgba(231, 76, 60, 0.2)"},
	kindInPlay:    {icon: "⚽", color: "#e74c3c", background: "rgba(231, 76, 60, 0.2)"},
	kindPaused:    {icon: "⏸️", color: "#f39c12", background: "rgba(243, 156, 18, 0.2)"},
	kindFinished:  {icon: "✅", color: "#27ae60", background: "rgba(39, 174, 96, 0.2)"},
	kindPostponed: {icon: "⏳", color: "#95a5a6", background: "rgba(149, 165, 166, 0.2)"},
	kindSuspended: {icon: "⚠️", color: "#e67e22", background: "rgba(230, 126, 34, 0.2)"},
	kindCanceled:  {icon: "❌", color: "#c0392b", background: "rgba(192, 57, 43, 0.2)"},
}

var statusLabels = [langCount][statusKindCount]string{
	LangTR: {
		kindScheduled: "Planlandı",
		kindLive:      "CANLI",
		kindInPlay:    "OYNANIYOR",
		kindPaused:    "Devre Arası",
		kindFinished:  "Bitti",
		kindPostponed: "Ertelendi",
		kindSuspended: "Askıya Alındı",
		kindCanceled:  "İptal",
	},
	LangEN: {
		kindScheduled: "Scheduled",
		kindLive:      "LIVE",
		kindInPlay:    "IN PLAY",
		kindPaused:    "Half time",
		kindFinished:  "Finished",
		kindPostponed: "Postponed",
		kindSuspended: "Suspended",
		kindCanceled:  "Canceled",
	},
}

func kindOf(status match.Status) statusKind {
	switch status {
	case match.StatusScheduled:
		return kindScheduled
	case match.StatusLive:
		return kindLive
	case match.StatusInPlay:
		return kindInPlay
	case match.StatusPaused:
		return kindPaused
	case match.StatusFinished:
		return kindFinished
	case match.StatusPostponed:
		return kindPostponed
	case match.StatusSuspended:
		return kindSuspended
	case match.StatusCanceled:
		return kindCanceled
	default:
		return kindUnknown
	}
}

// StatusInfo never fails: unknown statuses use the raw value as label.
func (c *Catalog) StatusInfo(status match.Status) StatusInfo {
	kind := kindOf(status)
	if kind == kindUnknown {
		return StatusInfo{
			Label:      string(status),
			Icon:       fallbackIcon,
			Color:      fallbackColor,
			Background: fallbackBackground,
		}
	}

	style := statusStyles[kind]
	return StatusInfo{
		Label:      statusLabels[c.Lang()][kind],
		Icon:       style.icon,
		Color:      style.color,
		Background: style.background,
	}
}
