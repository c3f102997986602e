package main

import (
	"fmt"
	"net/netip"
	"sort"
	"text/tabwriter"

	"apiaccess/internal/config"
	"apiaccess/internal/geoip"
	"apiaccess/internal/model"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list <settings.yaml>",
	Short: "Show the access methods of a settings document",
	Long:  `Show every access method in order. Peers are looked up in the GeoIP databases named in the config, if any.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return err
		}
		settings, err := loadSettings(args[0])
		if err != nil {
			return err
		}

		geo, err := geoip.Open(cfg.GeoIP.ASNPath, cfg.GeoIP.CountryPath)
		if err != nil {
			return err
		}
		defer geo.Close()

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)

		fmt.Fprintln(w, "#\tID\tNAME\tENABLED\tKIND\tENDPOINT\tISP\tCOUNTRY")
		kinds := make(map[string]int)
		for i, s := range settings.AccessMethods {
			kinds[s.Method.Kind().String()]++

			res := geoip.Result{ISP: geoip.Unknown, Country: geoip.Unknown}
			if addr, ok := peerAddr(s.Method); ok {
				res = geo.Lookup(addr)
			}
			fmt.Fprintf(w, "%d\t%s\t%s\t%t\t%s\t%s\t%s\t%s\n",
				i, s.ID, s.Name, s.Enabled, s.Method.Kind(), endpoint(s.Method), res.ISP, country(res.Country))
		}
		fmt.Fprintln(w, "\t")

		var names []string
		for k := range kinds {
			names = append(names, k)
		}
		sort.Strings(names)
		for _, k := range names {
			fmt.Fprintf(w, "%s:\t%d\n", k, kinds[k])
		}
		fmt.Fprintf(w, "total:\t%d\n", len(settings.AccessMethods))

		return w.Flush()
	},
}

func peerAddr(m model.AccessMethod) (netip.Addr, bool) {
	switch m := m.(type) {
	case model.Socks5Local:
		return m.Peer().Addr(), true
	case model.Socks5Remote:
		return m.Peer().Addr(), true
	case model.Shadowsocks:
		return m.Peer().Addr(), true
	default:
		return netip.Addr{}, false
	}
}

func endpoint(m model.AccessMethod) string {
	switch m := m.(type) {
	case model.Socks5Local:
		return fmt.Sprintf("%s via :%d", m.Peer(), m.LocalPort())
	case model.Socks5Remote:
		return m.Peer().String()
	case model.Shadowsocks:
		return fmt.Sprintf("%s (%s)", m.Peer(), m.Cipher())
	default:
		return "-"
	}
}

func country(code string) string {
	if code == geoip.Unknown || code == "XX" {
		return code
	}
	return geoip.Flag(code) + " " + code
}

func init() {
	rootCmd.AddCommand(listCmd)
}
