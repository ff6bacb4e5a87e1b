package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/ecommlabs/gocatalog/internal/service"
	"github.com/spf13/cobra"
)

// catalogctl list [--name X | --category X | --available | --unavailable | --price X]
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List products, optionally filtered by a single field",
	RunE: func(cmd *cobra.Command, _ []string) error {
		env, err := boot(cmd.Context())
		if err != nil {
			return err
		}
		defer env.close()

		ctx := cmd.Context()
		flags := cmd.Flags()

		var products []service.ProductDto
		switch {
		case flags.Changed("name"):
			name, _ := flags.GetString("name")
			products, err = env.service.FindByName(ctx, name)
		case flags.Changed("category"):
			category, _ := flags.GetString("category")
			products, err = env.service.FindByCategory(ctx, category)
		case flags.Changed("price"):
			price, _ := flags.GetString("price")
			products, err = env.service.FindByPrice(ctx, price)
		case flags.Changed("available"):
			available, _ := flags.GetBool("available")
			products, err = env.service.FindByAvailability(ctx, available)
		default:
			products, err = env.service.FindAll(ctx)
		}
		if err != nil {
			return err
		}
		return printJSON(cmd.OutOrStdout(), products)
	},
}

// catalogctl get <id>
var getCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show a single product by ID",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		env, err := boot(cmd.Context())
		if err != nil {
			return err
		}
		defer env.close()

		found, err := env.service.FindByID(cmd.Context(), id)
		if err != nil {
			return err
		}
		return printJSON(cmd.OutOrStdout(), found)
	},
}

// catalogctl create --name X --description X --price X --category X [--available]
var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a new product",
	RunE: func(cmd *cobra.Command, _ []string) error {
		env, err := boot(cmd.Context())
		if err != nil {
			return err
		}
		defer env.close()

		flags := cmd.Flags()
		name, _ := flags.GetString("name")
		description, _ := flags.GetString("description")
		price, _ := flags.GetString("price")
		category, _ := flags.GetString("category")
		available, _ := flags.GetBool("available")

		created, err := env.service.Create(cmd.Context(), service.ProductCreateDto{
			Name:        name,
			Description: description,
			Price:       price,
			Available:   &available,
			Category:    category,
		})
		if err != nil {
			return err
		}
		env.logger.Info("product created", "id", created.ID, "name", created.Name)
		return printJSON(cmd.OutOrStdout(), created)
	},
}

// catalogctl delete <id>
var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a product by ID",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		env, err := boot(cmd.Context())
		if err != nil {
			return err
		}
		defer env.close()

		if err := env.service.DeleteByID(cmd.Context(), id); err != nil {
			return err
		}
		env.logger.Info("product deleted", "id", id)
		return nil
	},
}

func init() {
	listCmd.Flags().String("name", "", "filter by exact name")
	listCmd.Flags().String("category", "", "filter by category name")
	listCmd.Flags().String("price", "", "filter by exact price")
	listCmd.Flags().Bool("available", true, "filter by availability")

	createCmd.Flags().String("name", "", "product name")
	createCmd.Flags().String("description", "", "product description")
	createCmd.Flags().String("price", "", "product price, e.g. 12.50")
	createCmd.Flags().String("category", "", "product category name")
	createCmd.Flags().Bool("available", false, "whether the product is available")
	_ = createCmd.MarkFlagRequired("name")
	_ = createCmd.MarkFlagRequired("description")
	_ = createCmd.MarkFlagRequired("price")
	_ = createCmd.MarkFlagRequired("category")
}

func parseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 1 {
		return 0, fmt.Errorf("invalid product ID: %s", raw)
	}
	return id, nil
}

func printJSON(w io.Writer, payload any) error {
	out, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(out))
	return err
}
