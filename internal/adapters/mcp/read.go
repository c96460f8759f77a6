package mcp

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"phonecentral/internal/application/commands"
	"phonecentral/internal/domain"
	"phonecentral/internal/ports"
)

// RegisterReadTools adds all read-only exchange tools to the MCP server.
func RegisterReadTools(s *server.MCPServer, dir ports.Directory) {
	s.AddTool(searchContactsTool(), searchContactsHandler(dir))
	s.AddTool(suggestPhoneTool(), suggestPhoneHandler(dir))
	s.AddTool(callHistoryTool(), callHistoryHandler(dir))
	s.AddTool(historyBetweenTool(), historyBetweenHandler(dir))
	s.AddTool(topNumbersTool(), topNumbersHandler(dir))
	s.AddTool(popularityTool(), popularityHandler(dir))
}

// --- search_contacts ---

func searchContactsTool() mcp.Tool {
	return mcp.NewTool("search_contacts",
		mcp.WithDescription("Search the phone book by first name, last name, or phone prefix. Results are ranked by popularity."),
		mcp.WithString("field",
			mcp.Description("Which field to search: first, last, or phone"),
			mcp.Required(),
		),
		mcp.WithString("prefix",
			mcp.Description("Prefix to search for"),
			mcp.Required(),
		),
		mcp.WithBoolean("exact",
			mcp.Description("Match the full name exactly instead of as a prefix (name searches only)"),
		),
	)
}

func searchContactsHandler(dir ports.Directory) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		field := req.GetString("field", "")
		prefix := req.GetString("prefix", "")
		if prefix == "" {
			return toolError(fmt.Errorf("prefix is required"))
		}

		var results []domain.ScoredContact
		switch field {
		case "first":
			results = dir.SearchByName(domain.FieldFirstName, prefix, req.GetBool("exact", false))
		case "last":
			results = dir.SearchByName(domain.FieldLastName, prefix, req.GetBool("exact", false))
		case "phone":
			results = dir.SearchByPhone(prefix)
		default:
			return toolError(fmt.Errorf("invalid field: %s (expected first, last, or phone)", field))
		}

		return formatEntities(results, formatScoredContact)
	}
}

// --- suggest_phone ---

func suggestPhoneTool() mcp.Tool {
	return mcp.NewTool("suggest_phone",
		mcp.WithDescription("Suggest known phone numbers similar to an input that matched nothing (\"did you mean\")."),
		mcp.WithString("input",
			mcp.Description("The phone number that found no matches"),
			mcp.Required(),
		),
	)
}

func suggestPhoneHandler(dir ports.Directory) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		input := req.GetString("input", "")
		if input == "" {
			return toolError(fmt.Errorf("input is required"))
		}
		return formatEntities(dir.SuggestSimilarPhone(input), formatPhoneSuggestion)
	}
}

// --- call_history ---

func callHistoryTool() mcp.Tool {
	return mcp.NewTool("call_history",
		mcp.WithDescription("Chronological call history for a phone number, each call tagged IN or OUT. Optional time window."),
		mcp.WithString("number",
			mcp.Description("Phone number"),
			mcp.Required(),
		),
		mcp.WithString("from",
			mcp.Description("Window start, DD.MM.YYYY HH:MM:SS"),
		),
		mcp.WithString("to",
			mcp.Description("Window end, DD.MM.YYYY HH:MM:SS"),
		),
	)
}

func callHistoryHandler(dir ports.Directory) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		number := req.GetString("number", "")
		if number == "" {
			return toolError(fmt.Errorf("number is required"))
		}
		from, err := parseWindowBound(req.GetString("from", ""))
		if err != nil {
			return toolError(err)
		}
		to, err := parseWindowBound(req.GetString("to", ""))
		if err != nil {
			return toolError(err)
		}

		history, err := commands.NewHistoryForCommand(dir, number, from, to).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return formatEntities(history, formatDirectedCall)
	}
}

// --- history_between ---

func historyBetweenTool() mcp.Tool {
	return mcp.NewTool("history_between",
		mcp.WithDescription("Every call between two phone numbers, in either direction, in chronological order."),
		mcp.WithString("a",
			mcp.Description("First phone number"),
			mcp.Required(),
		),
		mcp.WithString("b",
			mcp.Description("Second phone number"),
			mcp.Required(),
		),
	)
}

func historyBetweenHandler(dir ports.Directory) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		a := req.GetString("a", "")
		b := req.GetString("b", "")
		if a == "" || b == "" {
			return toolError(fmt.Errorf("both a and b are required"))
		}

		calls, err := commands.NewHistoryBetweenCommand(dir, a, b, nil, nil).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return formatEntities(calls, formatCall)
	}
}

// --- top_numbers ---

func topNumbersTool() mcp.Tool {
	return mcp.NewTool("top_numbers",
		mcp.WithDescription("Numbers ranked by received (incoming) or placed (outgoing) call count."),
		mcp.WithString("direction",
			mcp.Description("incoming or outgoing"),
			mcp.Required(),
		),
		mcp.WithNumber("n",
			mcp.Description("How many numbers to return (default 5)"),
		),
	)
}

func topNumbersHandler(dir ports.Directory) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		direction := commands.TopIncoming
		switch req.GetString("direction", "") {
		case "incoming":
		case "outgoing":
			direction = commands.TopOutgoing
		default:
			return toolError(fmt.Errorf("invalid direction (expected incoming or outgoing)"))
		}
		n := req.GetInt("n", 5)

		ranked, err := commands.NewTopCommand(dir, direction, n).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return formatEntities(ranked, func(r domain.RankedNumber) string {
			return fmt.Sprintf("%s  in=%d out=%d", r.Number, r.Stats.IncomingCount, r.Stats.OutgoingCount)
		})
	}
}

// --- popularity ---

func popularityTool() mcp.Tool {
	return mcp.NewTool("popularity",
		mcp.WithDescription("Popularity score and traffic counters for a phone number."),
		mcp.WithString("number",
			mcp.Description("Phone number"),
			mcp.Required(),
		),
	)
}

func popularityHandler(dir ports.Directory) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		raw := req.GetString("number", "")
		if raw == "" {
			return toolError(fmt.Errorf("number is required"))
		}
		number, err := domain.NormalizePhone(raw)
		if err != nil {
			return toolError(err)
		}

		stats, ok := dir.Stats(number)
		if !ok {
			return mcp.NewToolResultText(fmt.Sprintf("%s has no recorded traffic (score 0.00).", number)), nil
		}
		return mcp.NewToolResultText(fmt.Sprintf(
			"%s  score=%.2f  incoming=%d (%s)  outgoing=%d (%s)  unique callers=%d  unique callees=%d",
			number,
			dir.Score(number),
			stats.IncomingCount, domain.FormatMMSS(stats.IncomingDuration),
			stats.OutgoingCount, domain.FormatMMSS(stats.OutgoingDuration),
			len(stats.UniqueCallers), len(stats.UniqueCallees),
		)), nil
	}
}

// --- helpers ---

func toolError(err error) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultError(err.Error()), nil
}

func parseWindowBound(raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	t, err := time.ParseInLocation("02.01.2006 15:04:05", raw, time.Local)
	if err != nil {
		return nil, fmt.Errorf("invalid time %q; expected DD.MM.YYYY HH:MM:SS", raw)
	}
	return &t, nil
}

func formatEntities[T any](entities []T, format func(T) string) (*mcp.CallToolResult, error) {
	if len(entities) == 0 {
		return mcp.NewToolResultText("No results."), nil
	}
	var sb strings.Builder
	for _, e := range entities {
		sb.WriteString(format(e))
		sb.WriteByte('\n')
	}
	return mcp.NewToolResultText(sb.String()), nil
}

func formatScoredContact(r domain.ScoredContact) string {
	return fmt.Sprintf("%s  %s  popularity=%.2f", r.Contact.FullName(), r.Contact.Phone, r.Score)
}

func formatPhoneSuggestion(s domain.PhoneSuggestion) string {
	return fmt.Sprintf("%s  %s  popularity=%.2f", s.Phone, s.Contact.FullName(), s.Score)
}

func formatDirectedCall(d commands.DirectedCall) string {
	return fmt.Sprintf("[%s] %s", d.Direction, formatCall(d.Call))
}

func formatCall(c *domain.Call) string {
	return fmt.Sprintf("%s | %s | %s → %s",
		c.Start.Format("02.01.2006 15:04:05"), c.FormatDuration(), c.Caller, c.Callee)
}
