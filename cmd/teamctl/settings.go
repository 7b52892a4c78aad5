package main

import (
	"fmt"
	"team-bot/commands"
	"team-bot/domain"
	"team-bot/errors"

	"github.com/gookit/color"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

func newShowCmd(provider *AppProvider) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := provider.Get()
			if err != nil {
				return err
			}
			printSettings(app, app.Repository.Settings())
			return nil
		},
	}
}

func newSetCmd(provider *AppProvider) *cobra.Command {
	return &cobra.Command{
		Use:   "set <setting> <value>",
		Short: "Change one setting",
		Long: `Change one setting and write the file.

Settings: lobby (alias channel), captain, team_one (team1), team_two (team2),
minimum_team_size (size). Channels and roles accept an id or a mention.

Examples:
  teamctl -g 1234 set lobby 812345678901234567
  teamctl -g 1234 set captain "<@&998877>"
  teamctl -g 1234 set size 4`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := provider.Get()
			if err != nil {
				return err
			}
			field, ok := domain.ParseSettingField(args[0])
			if !ok {
				return fmt.Errorf("%w: %s", errors.ErrUnknownSetting, args[0])
			}
			value := args[1]
			if field != domain.FieldMinimumTeamSize {
				if value, ok = commands.ParseID(field, value); !ok {
					return fmt.Errorf("%w: %s is not a valid %s", errors.ErrInvalidSetting, args[1], field)
				}
			}
			if err := app.Repository.Set(field, value); err != nil {
				return err
			}
			fmt.Fprintln(app.Out, paint(app, color.FgGreen, fmt.Sprintf("%s = %s", field, value)))
			return nil
		},
	}
}

func newUnsetCmd(provider *AppProvider) *cobra.Command {
	return &cobra.Command{
		Use:   "unset <setting>",
		Short: "Clear one setting",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := provider.Get()
			if err != nil {
				return err
			}
			field, ok := domain.ParseSettingField(args[0])
			if !ok {
				return fmt.Errorf("%w: %s", errors.ErrUnknownSetting, args[0])
			}
			if err := app.Repository.Unset(field); err != nil {
				return err
			}
			fmt.Fprintln(app.Out, paint(app, color.FgGreen, fmt.Sprintf("%s cleared", field)))
			return nil
		},
	}
}

func printSettings(app *App, settings domain.Settings) {
	table := tablewriter.NewWriter(app.Out)
	table.SetHeader([]string{"Setting", "Value"})
	table.SetAutoWrapText(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	for _, field := range domain.SettingFields {
		value, ok := settings.Value(field)
		if !ok {
			value = paint(app, color.FgYellow, "not set")
		}
		table.Append([]string{string(field), value})
	}
	table.Render()
}

func paint(app *App, c color.Color, s string) string {
	if !app.Colours {
		return s
	}
	return c.Render(s)
}
