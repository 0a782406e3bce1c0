package cmd

import (
	"errors"
	"io"
	"os"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/ponyo877/roomchat/server/domain"
	"github.com/ponyo877/roomchat/server/repository"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var journalCmd = &cobra.Command{
	Use:   "journal",
	Short: "Lists recorded presence events",
	Long: `Lists the connect, enter-room and disconnect events recorded in the
presence journal, newest first. The journal path comes from --journal.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := viper.GetString(journalKey)
		if path == "" {
			return errors.New("no journal configured, use --journal")
		}
		limit, _ := cmd.Flags().GetInt("limit")
		room, _ := cmd.Flags().GetString("room")
		name, _ := cmd.Flags().GetString("name")
		connection, _ := cmd.Flags().GetString("connection")

		journal, db, err := openJournal(cmd.Context(), path)
		if err != nil {
			return err
		}
		defer closeDB(db)

		entries, err := journal.List(cmd.Context(), repository.JournalQuery{
			Limit:        limit,
			ConnectionID: connection,
			Room:         room,
			NamePattern:  name,
		})
		if err != nil {
			return err
		}
		renderJournal(os.Stdout, entries)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(journalCmd)
	journalCmd.Flags().IntP("limit", "l", 50, "Maximum number of events to show")
	journalCmd.Flags().StringP("room", "r", "", "Only show events for this room")
	journalCmd.Flags().StringP("name", "n", "", "Only show events whose user name matches this regular expression")
	journalCmd.Flags().String("connection", "", "Only show events for this connection id")
}

func renderJournal(w io.Writer, entries []domain.PresenceEntry) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Time", "Kind", "Connection", "Name", "Room"})
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")

	for _, e := range entries {
		table.Append([]string{
			e.CreatedAt.Local().Format(time.DateTime),
			string(e.Kind),
			e.ConnectionID,
			e.Name,
			e.Room,
		})
	}
	table.Render()
}
