package main

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strings"
	"sync"
	"team-bot/contract"
	"team-bot/domain"
	"team-bot/services"

	"github.com/gookit/color"
	"github.com/olekukonko/tablewriter"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

// dryRunGuild answers like a guild where every configured channel exists and
// the lobby holds the given members. Moves are only recorded.
type dryRunGuild struct {
	mu      sync.Mutex
	members []domain.Member
	moves   []domain.Relocation
}

func (g *dryRunGuild) MoveMember(_ context.Context, member domain.Member, channel domain.ChannelID, _ string) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.moves = append(g.moves, domain.Relocation{Member: member, Channel: channel, Status: domain.RelocationMoved})
	return nil
}

func (g *dryRunGuild) ChannelExists(context.Context, domain.ChannelID) (bool, error) {
	return true, nil
}

func (g *dryRunGuild) VoiceMembers(context.Context, domain.ChannelID) ([]domain.Member, error) {
	return g.members, nil
}

func (g *dryRunGuild) ResolveInvoker(_ context.Context, userID domain.MemberID, _ string) (domain.Invoker, error) {
	return domain.Invoker{ID: userID, Administrator: true}, nil
}

var _ contract.IGuild = (*dryRunGuild)(nil)

func newSimulateCmd(provider *AppProvider) *cobra.Command {
	var (
		members []string
		seed    uint64
	)

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Dry-run a split with the current settings",
		Long: `Draw two teams from the given members as the bot would, using the
settings of the guild. Nobody is moved.

Examples:
  teamctl -g 1234 simulate --members alice,bob,carol,dave,erin,frank
  teamctl -g 1234 simulate --members alice,bob,carol,dave,erin,frank --seed 7`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := provider.Get()
			if err != nil {
				return err
			}

			roster := lo.FilterMap(members, func(name string, _ int) (domain.Member, bool) {
				name = strings.TrimSpace(name)
				return domain.NewMember(domain.MemberID(name), name), name != ""
			})
			guild := &dryRunGuild{members: roster}

			var opts []services.SplitOption
			if cmd.Flags().Changed("seed") {
				opts = append(opts, services.WithShuffler(rand.New(rand.NewPCG(seed, seed))))
			}
			splitter := services.NewSplitService(app.Repository, guild, app.Log, opts...)

			result, err := splitter.Split(context.Background(), domain.SplitCommand{
				Invoker: domain.Invoker{ID: "teamctl", Administrator: true},
			}, nil)
			if err != nil {
				return err
			}
			printTeams(app, result)
			return nil
		},
	}

	cmd.Flags().StringSliceVarP(&members, "members", "m", nil, "Comma separated names of the members in the lobby")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "Seed for a reproducible draw")
	return cmd
}

func printTeams(app *App, result domain.SplitResult) {
	fmt.Fprintf(app.Out, "%s %d vs %d\n",
		paint(app, color.FgCyan, "Teams"), len(result.Partition.TeamOne), len(result.Partition.TeamTwo))

	table := tablewriter.NewWriter(app.Out)
	table.SetHeader([]string{"Team", "Member", "Channel"})
	table.SetAutoWrapText(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	for _, r := range result.Relocations {
		table.Append([]string{r.Team.String(), r.Member.Name(), string(r.Channel)})
	}
	table.Render()
}
