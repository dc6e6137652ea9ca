package radar

import "strings"

// Destination names a view the dashboard can route to.
type Destination string

const (
	DestMain           Destination = "main"
	DestDataTable      Destination = "dataTable"
	DestTrendDetail    Destination = "trendDetail"
	DestVoiceAI        Destination = "voiceai"
	DestAgentOrch      Destination = "agentorch"
	DestDurableRuntime Destination = "durableruntime"
	DestSettings       Destination = "settings"
	DestNotFound       Destination = "notFound"
)

// NavItem is one entry of the sidebar menu.
type NavItem struct {
	Key   string
	Label string
	Dest  Destination
}

var navItems = []NavItem{
	{Key: "radar", Label: "Research Radar", Dest: DestMain},
	{Key: "voiceai", Label: "Voice AI", Dest: DestVoiceAI},
	{Key: "agentorch", Label: "Agent Orchestration", Dest: DestAgentOrch},
	{Key: "durableruntime", Label: "Durable Runtime", Dest: DestDurableRuntime},
	{Key: "settings", Label: "Settings", Dest: DestSettings},
}

// NavItems returns the sidebar menu in display order.
func NavItems() []NavItem {
	out := make([]NavItem, len(navItems))
	copy(out, navItems)
	return out
}

// NavigationRequest is produced by a selection and consumed immediately by
// the router. Index, ID and Arg are only set for DestTrendDetail.
type NavigationRequest struct {
	Dest  Destination
	Index int
	ID    int64
	Arg   string // raw trendDetail route argument, resolved by LoadByIndexString
}

// ResolveDestination maps a sidebar key to its destination. Unknown keys
// fall back to the main view.
func ResolveDestination(key string) Destination {
	for _, item := range navItems {
		if item.Key == key {
			return item.Dest
		}
	}
	return DestMain
}

// ToggleSidebar returns the flipped expansion flag.
func ToggleSidebar(expanded bool) bool {
	return !expanded
}

// SelectRow builds a detail request for a row picked from a filtered or
// sorted view. The row is located in the full record set by stable id,
// falling back to the first record with the same tool name.
func SelectRow(records []TrendRecord, row TrendRecord) (NavigationRequest, bool) {
	index, err := ResolveIndexByID(records, row.ID)
	if err != nil {
		index, err = ResolveIndexByToolName(records, row.ToolName)
		if err != nil {
			return NavigationRequest{}, false
		}
	}
	return NavigationRequest{
		Dest:  DestTrendDetail,
		Index: index,
		ID:    records[index].ID,
	}, true
}

// ParseRoute turns a route string such as "dataTable" or "trendDetail/3"
// into a request. Anything unrecognised resolves to DestNotFound; an empty
// route is the main view. The trendDetail argument stays raw until records
// are available to resolve it against.
func ParseRoute(route string) NavigationRequest {
	route = strings.Trim(strings.TrimSpace(route), "/")
	if route == "" {
		return NavigationRequest{Dest: DestMain}
	}
	name, arg, hasArg := strings.Cut(route, "/")
	dest := Destination(name)
	switch dest {
	case DestTrendDetail:
		if !hasArg || arg == "" {
			return NavigationRequest{Dest: DestNotFound}
		}
		return NavigationRequest{Dest: DestTrendDetail, Arg: arg}
	case DestMain, DestDataTable, DestVoiceAI, DestAgentOrch, DestDurableRuntime, DestSettings:
		if hasArg {
			return NavigationRequest{Dest: DestNotFound}
		}
		return NavigationRequest{Dest: dest}
	default:
		return NavigationRequest{Dest: DestNotFound}
	}
}

// FocusAreaFor returns the focus area shown by a sub-application section.
func FocusAreaFor(dest Destination) (string, bool) {
	switch dest {
	case DestVoiceAI:
		return FocusVoiceAIUX, true
	case DestAgentOrch:
		return FocusAgentOrchestration, true
	case DestDurableRuntime:
		return FocusDurableRuntime, true
	default:
		return "", false
	}
}
