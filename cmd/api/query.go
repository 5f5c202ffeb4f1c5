package main

import (
	"encoding/json"
	"io"

	"countrystats-api/api/dto/mappers"
	"countrystats-api/core/domain"
	"github.com/spf13/cobra"
)

func citiesCmd(o *overrides) *cobra.Command {
	var sortOrder string

	cmd := &cobra.Command{
		Use:   "cities <country>",
		Short: "Print the cities of a country as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			order, err := domain.ParseSortOrder(sortOrder)
			if err != nil {
				return err
			}

			a, err := newApp(*o, cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			cities, err := a.cities.CitiesByCountry(cmd.Context(), args[0], order)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), mappers.ToCityResponses(cities))
		},
	}

	cmd.Flags().StringVar(&sortOrder, "sort", string(domain.SortNameAsc), "Sort order (nameAsc, nameDesc, populationAsc, populationDesc, yearAsc, yearDesc)")
	return cmd
}

func infoCmd(o *overrides) *cobra.Command {
	return &cobra.Command{
		Use:   "info <country>",
		Short: "Print general facts about a country as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(*o, cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			info, err := a.countries.CountryInfo(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), mappers.ToCountryInfoResponse(info))
		},
	}
}

func printJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
