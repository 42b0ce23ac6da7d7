package main

import (
	"fmt"
	"strconv"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2/table"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"hrquery/detail"
	nt "hrquery/entity"
	"hrquery/style"
	"hrquery/util"
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Run the browse/edit screen (default)",
	Args:  cobra.NoArgs,
	RunE:  runBrowse,
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print every hr query",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) (err error) {

		ap, err := start()
		if err != nil {
			return
		}
		defer ap.stop()

		items, err := ap.store.List(ap.ctx, nt.LocalView)
		if err != nil {
			return
		}

		tbl := table.New().Headers("ID", "VERSION", "NAME", "CREATED BY")
		style.StyleTable(tbl)
		for _, item := range items {
			tbl.Row(item.ID.String(), strconv.Itoa(item.Version), item.Name, item.CreatedBy)
		}

		fmt.Fprintln(cmd.OutOrStdout(), tbl.String())
		return
	},
}

var addCmd = &cobra.Command{
	Use:   "add NAME...",
	Short: "Add hr queries by name",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) (err error) {

		// fail before storing any of them
		validate := detail.MaxLength(nt.NameLength)
		for _, name := range args {
			msg := validate(name)
			if msg != "" {
				return &nt.ValidationError{Fields: map[string][]string{nt.NameProp: {msg}}}
			}
		}

		ap, err := start()
		if err != nil {
			return
		}
		defer ap.stop()

		for _, name := range args {
			item := ap.store.NewItem()
			item.Name = name

			var committed *nt.HrQuery
			committed, err = ap.store.Commit(ap.ctx, item)
			if err != nil {
				return
			}
			fmt.Fprintln(cmd.OutOrStdout(), committed.ID)
		}
		return
	},
}

var rmCmd = &cobra.Command{
	Use:   "rm ID...",
	Short: "Remove hr queries by id",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) (err error) {

		ids := make([]uuid.UUID, len(args))
		for i, arg := range args {
			ids[i], err = uuid.Parse(arg)
			if err != nil {
				err = errors.Wrapf(err, "bad id %q", arg)
				return
			}
		}

		ap, err := start()
		if err != nil {
			return
		}
		defer ap.stop()

		items := make([]*nt.HrQuery, len(ids))
		for i, id := range ids {
			items[i], err = ap.store.Get(ap.ctx, id, nt.MinimalView)
			if err != nil {
				return
			}
		}

		err = ap.store.Remove(ap.ctx, items)
		if err != nil {
			return
		}

		fmt.Fprintf(cmd.OutOrStdout(), "removed %d\n", len(items))
		return
	},
}

var sampleCmd = &cobra.Command{
	Use:   "sample-config",
	Short: "Write a sample config unless one exists",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) (err error) {

		written, err := util.SampleConfig(sample(), cfgPath, 0644)
		if err != nil {
			return
		}

		if written {
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", cfgPath)
			return
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s exists, leaving it be\n", cfgPath)
		return
	},
}

func init() {
	rootCmd.AddCommand(browseCmd, listCmd, addCmd, rmCmd, sampleCmd)
}

func runBrowse(cmd *cobra.Command, args []string) (err error) {

	ap, err := start()
	if err != nil {
		return
	}
	defer ap.stop()

	model, err := ap.cfg.Screen.New(ap.ctx, ap.store, ap.logger)
	if err != nil {
		ap.logger.Error(ap.ctx, "failed to create model", err)
		return
	}

	_, err = tea.NewProgram(model).Run()
	if err != nil {
		ap.logger.Error(ap.ctx, "screen failed", err)
	}
	return
}
