package cmd

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/datapio/buildstock/nominatim"
)

// geocodeConcurrency limits parallel requests against the geocoding service.
const geocodeConcurrency = 5

// geocodeCmd represents the geocode command
var geocodeCmd = &cobra.Command{
	Use:   "geocode LAT,LON [LAT,LON...]",
	Short: "Reverse geocode coordinates into street addresses",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runGeocode,
}

func init() {
	rootCmd.AddCommand(geocodeCmd)
}

func parseCoordinates(arg string) (nominatim.Coordinates, error) {
	latStr, lonStr, found := strings.Cut(arg, ",")
	if !found {
		return nominatim.Coordinates{}, fmt.Errorf("invalid coordinate pair %q, expected LAT,LON", arg)
	}
	lat, err := strconv.ParseFloat(strings.TrimSpace(latStr), 64)
	if err != nil {
		return nominatim.Coordinates{}, fmt.Errorf("invalid latitude in %q: %w", arg, err)
	}
	lon, err := strconv.ParseFloat(strings.TrimSpace(lonStr), 64)
	if err != nil {
		return nominatim.Coordinates{}, fmt.Errorf("invalid longitude in %q: %w", arg, err)
	}
	return nominatim.Coordinates{Latitude: lat, Longitude: lon}, nil
}

func runGeocode(cmd *cobra.Command, args []string) error {
	coords := make([]nominatim.Coordinates, len(args))
	for i, arg := range args {
		c, err := parseCoordinates(arg)
		if err != nil {
			return err
		}
		coords[i] = c
	}

	addresses := make([]nominatim.Address, len(coords))

	g, ctx := errgroup.WithContext(context.Background())
	g.SetLimit(geocodeConcurrency)

	for i, c := range coords {
		i, c := i, c
		g.Go(func() error {
			addr, err := geocoder.GetAddress(ctx, c.Latitude, c.Longitude)
			if err != nil {
				return fmt.Errorf("geocoding %v,%v: %w", c.Latitude, c.Longitude, err)
			}
			addresses[i] = addr
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	for i, addr := range addresses {
		fmt.Printf("%s -> %s %s, %s %s\n", args[i], addr.Street, addr.HouseNumber, addr.Postcode, addr.City)
	}

	return nil
}
