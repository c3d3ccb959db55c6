package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func init() {
	pagesCmd := &cobra.Command{Use: "pages", Short: "Page content operations"}

	getCmd := &cobra.Command{
		Use:   "get [PAGE_KEY]",
		Short: "Get page content, all pages when no key is given",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query := map[string]string{}
			if len(args) == 1 {
				query["pageKey"] = args[0]
			}
			data, err := doGet("/api/page-content", query)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(os.Stdout, string(data))
			return nil
		},
	}
	pagesCmd.AddCommand(getCmd)

	var title, description, content string
	setCmd := &cobra.Command{
		Use:   "set PAGE_KEY",
		Short: "Patch page content fields by page key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			payload := map[string]interface{}{}
			if cmd.Flags().Changed("title") {
				payload["title"] = title
			}
			if cmd.Flags().Changed("description") {
				payload["description"] = description
			}
			if cmd.Flags().Changed("content") {
				payload["content"] = content
			}
			if len(payload) == 0 {
				return fmt.Errorf("nothing to update; pass --title, --description or --content")
			}
			data, err := doPatch("/api/page-content/"+args[0], payload)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(os.Stdout, string(data))
			return nil
		},
	}
	setCmd.Flags().StringVarP(&title, "title", "t", "", "Page title")
	setCmd.Flags().StringVarP(&description, "description", "d", "", "Page description")
	setCmd.Flags().StringVarP(&content, "content", "c", "", "Page body content")
	pagesCmd.AddCommand(setCmd)

	var createTitle string
	createCmd := &cobra.Command{
		Use:   "create PAGE_KEY",
		Short: "Create a page content record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			payload := map[string]interface{}{"pageKey": args[0], "title": createTitle}
			data, err := doPost("/api/page-content", payload)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(os.Stdout, string(data))
			return nil
		},
	}
	createCmd.Flags().StringVarP(&createTitle, "title", "t", "", "Page title (required)")
	_ = createCmd.MarkFlagRequired("title")
	pagesCmd.AddCommand(createCmd)

	rootCmd.AddCommand(pagesCmd)
}
