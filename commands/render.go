package commands

import (
	stderrors "errors"
	"fmt"
	"strings"
	"team-bot/domain"
	"team-bot/errors"
	"team-bot/observability"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/samber/lo"
)

// UnauthorizedNotice is posted, then deleted, when a member without the
// captain role tries a restricted command.
const UnauthorizedNotice = "You canne do that, Captain or Admin only baws."

func renderTable(header []string, rows [][]string) string {
	var buf strings.Builder
	table := tablewriter.NewWriter(&buf)
	table.SetHeader(header)
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("  ")
	table.AppendBulk(rows)
	table.Render()
	return "```\n" + strings.TrimRight(buf.String(), "\n") + "\n```"
}

// RenderTeams is the announcement posted before anyone moves.
func RenderTeams(result domain.SplitResult) string {
	rows := make([][]string, 0, result.Partition.Size())
	for _, team := range []domain.Team{domain.TeamOne, domain.TeamTwo} {
		for _, m := range result.Partition.Members(team) {
			rows = append(rows, []string{team.String(), m.Name()})
		}
	}
	return fmt.Sprintf("Teams are ready, %d vs %d. Moving players...\n%s",
		len(result.Partition.TeamOne), len(result.Partition.TeamTwo),
		renderTable([]string{"Team", "Player"}, rows))
}

// RenderSplitResult summarizes the moves of a split.
func RenderSplitResult(result domain.SplitResult) string {
	rows := lo.Map(result.Relocations, func(r domain.Relocation, _ int) []string {
		return []string{r.Member.Name(), r.Team.String(), string(r.Status), r.Detail}
	})
	for _, m := range result.Pending() {
		rows = append(rows, []string{m.Name(), "", "not attempted", ""})
	}

	var b strings.Builder
	if result.Aborted {
		fmt.Fprintf(&b, "Split stopped: %v. Check that I can move members.\n", result.AbortReason)
	} else {
		fmt.Fprintf(&b, "Split done: %d moved, %d skipped, %d failed.\n",
			result.Count(domain.RelocationMoved),
			result.Count(domain.RelocationSkipped),
			result.Count(domain.RelocationFailed))
	}
	b.WriteString(renderTable([]string{"Player", "Team", "Status", "Detail"}, rows))
	return b.String()
}

var fieldLabels = map[domain.SettingField]string{
	domain.FieldLobby:           "Lobby channel",
	domain.FieldCaptain:         "Captain role",
	domain.FieldTeamOne:         "Team One channel",
	domain.FieldTeamTwo:         "Team Two channel",
	domain.FieldMinimumTeamSize: "Minimum team size",
}

// RenderSettings shows every setting, with mentions for configured ids.
func RenderSettings(settings domain.Settings) string {
	lines := lo.Map(domain.SettingFields, func(field domain.SettingField, _ int) string {
		value, ok := settings.Value(field)
		switch {
		case !ok:
			value = "not set"
		case field == domain.FieldCaptain:
			value = "<@&" + value + ">"
		case field.IsChannel():
			value = "<#" + value + ">"
		}
		return fmt.Sprintf("**%s** (`%s`): %s", fieldLabels[field], field, value)
	})
	return strings.Join(lines, "\n")
}

// RenderStatus reports the bot process and the split counters.
func RenderStatus(stats observability.MonitoringStats, guilds int) string {
	rows := [][]string{
		{"Uptime", stats.Uptime.String()},
		{"Guilds", fmt.Sprint(guilds)},
		{"Splits", fmt.Sprint(stats.Splits)},
		{"Aborted splits", fmt.Sprint(stats.AbortedSplits)},
		{"Rejected splits", fmt.Sprint(stats.Rejected)},
		{"Members moved", fmt.Sprint(stats.Moved)},
		{"Members skipped", fmt.Sprint(stats.Skipped)},
		{"Members failed", fmt.Sprint(stats.Failed)},
	}
	if !stats.LastSampled.IsZero() {
		rows = append(rows,
			[]string{"Memory (RSS)", fmt.Sprintf("%.1f MiB", float64(stats.RSSBytes)/1024/1024)},
			[]string{"CPU", fmt.Sprintf("%.1f%%", stats.CPUPercent)},
			[]string{"Goroutines", fmt.Sprint(stats.Goroutines)},
			[]string{"Sampled", stats.LastSampled.Format(time.RFC3339)},
		)
	}
	return renderTable([]string{"Metric", "Value"}, rows)
}

func RenderHelp(prefix string) string {
	rows := [][]string{
		{prefix + "split", "Split the lobby into two teams and move everyone"},
		{prefix + "config", "Show the settings"},
		{prefix + "config channel <#lobby>", "Set the lobby channel"},
		{prefix + "config team1 <#channel>", "Set the Team One channel"},
		{prefix + "config team2 <#channel>", "Set the Team Two channel"},
		{prefix + "config captain <@&role>", "Set the captain role"},
		{prefix + "config size <n>", "Set the minimum team size"},
		{prefix + "config unset <setting>", "Clear a setting"},
		{prefix + "status", "Show bot status"},
	}
	return "Splitting and changing settings is for administrators and captains.\n" +
		renderTable([]string{"Command", "Description"}, rows)
}

// Describe turns a command failure into the reply shown to the member.
func Describe(prefix string, err error) string {
	var incomplete *errors.IncompleteConfigurationError
	switch {
	case stderrors.As(err, &incomplete):
		return fmt.Sprintf("Configuration incomplete, missing: %s. See `%shelp`.",
			strings.Join(incomplete.Missing, ", "), prefix)
	case stderrors.Is(err, errors.ErrInsufficientMembers),
		stderrors.Is(err, errors.ErrChannelNotFound),
		stderrors.Is(err, errors.ErrInvalidSetting),
		stderrors.Is(err, errors.ErrUnknownSetting):
		return capitalize(err.Error()) + "."
	case stderrors.Is(err, errors.ErrSplitInProgress):
		return "A split is already running, wait for it to finish."
	case stderrors.Is(err, errors.ErrPersistence):
		return "Settings could not be saved, nothing changed."
	case stderrors.Is(err, errors.ErrCorruptConfig):
		return "The settings file of this server is corrupt, fix or remove it."
	case stderrors.Is(err, errors.ErrForbidden):
		return "I am missing a permission for that."
	}
	return "Something went wrong, try again later."
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
