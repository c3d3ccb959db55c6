package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
)

func init() {
	agentsCmd := &cobra.Command{Use: "agents", Short: "Agent operations"}

	var search, category string
	var featured, isNew bool
	var limit int
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List agents (search beats category beats featured beats new)",
		RunE: func(cmd *cobra.Command, args []string) error {
			query := map[string]string{}
			if search != "" {
				query["search"] = search
			}
			if category != "" {
				query["category"] = category
			}
			if featured {
				query["featured"] = "true"
			}
			if isNew {
				query["isNew"] = "true"
			}
			if limit > 0 {
				query["limit"] = strconv.Itoa(limit)
			}
			data, err := doGet("/api/agents", query)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(os.Stdout, string(data))
			return nil
		},
	}
	listCmd.Flags().StringVarP(&search, "search", "q", "", "Substring search over name and description")
	listCmd.Flags().StringVarP(&category, "category", "c", "", "Category slug filter")
	listCmd.Flags().BoolVar(&featured, "featured", false, "Featured agents only, rating-descending")
	listCmd.Flags().BoolVar(&isNew, "new", false, "New agents only, rating-descending")
	listCmd.Flags().IntVarP(&limit, "limit", "l", 0, "Truncate ranked listings (0 = all)")
	agentsCmd.AddCommand(listCmd)

	getCmd := &cobra.Command{
		Use:   "get SLUG",
		Short: "Get agent detail (agent, features, use cases) by slug",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := doGet("/api/agents/"+args[0], nil)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(os.Stdout, string(data))
			return nil
		},
	}
	agentsCmd.AddCommand(getCmd)

	var name, slug, description, imageURL, websiteURL string
	var rating, userCount, categoryID int32
	var free, featuredFlag, newFlag bool
	createCmd := &cobra.Command{
		Use:   "create",
		Short: "Create an agent",
		RunE: func(cmd *cobra.Command, args []string) error {
			payload := map[string]interface{}{
				"name": name, "slug": slug, "description": description,
				"imageUrl": imageURL, "websiteUrl": websiteURL,
				"rating": rating, "userCount": userCount, "categoryId": categoryID,
				"isFree": free, "featured": featuredFlag, "isNew": newFlag,
			}
			data, err := doPost("/api/agents", payload)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(os.Stdout, string(data))
			return nil
		},
	}
	createCmd.Flags().StringVarP(&name, "name", "n", "", "Agent name (required)")
	createCmd.Flags().StringVarP(&slug, "slug", "s", "", "URL slug (required)")
	createCmd.Flags().StringVarP(&description, "description", "d", "", "Description (required)")
	createCmd.Flags().StringVar(&imageURL, "image-url", "", "Image URL")
	createCmd.Flags().StringVar(&websiteURL, "website-url", "", "Website URL")
	createCmd.Flags().Int32Var(&rating, "rating", 0, "Rating scaled by ten (0-50)")
	createCmd.Flags().Int32Var(&userCount, "user-count", 0, "User count")
	createCmd.Flags().Int32Var(&categoryID, "category-id", 0, "Category id (required)")
	createCmd.Flags().BoolVar(&free, "free", false, "Has a free tier")
	createCmd.Flags().BoolVar(&featuredFlag, "featured", false, "Featured flag")
	createCmd.Flags().BoolVar(&newFlag, "new", false, "New flag")
	_ = createCmd.MarkFlagRequired("name")
	_ = createCmd.MarkFlagRequired("slug")
	_ = createCmd.MarkFlagRequired("category-id")
	agentsCmd.AddCommand(createCmd)

	rootCmd.AddCommand(agentsCmd)
}
