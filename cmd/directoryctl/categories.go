package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func init() {
	categoriesCmd := &cobra.Command{Use: "categories", Short: "Category operations"}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List all categories",
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := doGet("/api/categories", nil)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(os.Stdout, string(data))
			return nil
		},
	}
	categoriesCmd.AddCommand(listCmd)

	getCmd := &cobra.Command{
		Use:   "get SLUG",
		Short: "Get a category by slug",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := doGet("/api/categories/"+args[0], nil)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(os.Stdout, string(data))
			return nil
		},
	}
	categoriesCmd.AddCommand(getCmd)

	var name, slug, icon, iconBg, iconColor string
	createCmd := &cobra.Command{
		Use:   "create",
		Short: "Create a category",
		RunE: func(cmd *cobra.Command, args []string) error {
			payload := map[string]interface{}{
				"name": name, "slug": slug, "icon": icon,
				"iconBgColor": iconBg, "iconColor": iconColor,
			}
			data, err := doPost("/api/categories", payload)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(os.Stdout, string(data))
			return nil
		},
	}
	createCmd.Flags().StringVarP(&name, "name", "n", "", "Category name (required)")
	createCmd.Flags().StringVarP(&slug, "slug", "s", "", "URL slug (required)")
	createCmd.Flags().StringVar(&icon, "icon", "", "Icon token (required)")
	createCmd.Flags().StringVar(&iconBg, "icon-bg", "", "Icon background class (required)")
	createCmd.Flags().StringVar(&iconColor, "icon-color", "", "Icon color class (required)")
	_ = createCmd.MarkFlagRequired("name")
	_ = createCmd.MarkFlagRequired("slug")
	categoriesCmd.AddCommand(createCmd)

	rootCmd.AddCommand(categoriesCmd)
}
