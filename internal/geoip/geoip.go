// Package geoip looks up the network owner and country of access method
// peers in MaxMind databases.
package geoip

import (
	"fmt"
	"net"
	"net/netip"
	"strings"

	"apiaccess/internal/logger"

	"github.com/oschwald/geoip2-golang"
)

// Unknown is reported for every field when no database is configured.
const Unknown = "-"

// DB holds the optional ASN and country readers. A nil *DB, or one opened
// with empty paths, answers every lookup with Unknown.
type DB struct {
	asn     *geoip2.Reader
	country *geoip2.Reader
}

type Result struct {
	ISP     string
	Country string
}

// Open loads the databases at the given paths; either may be empty. A
// broken ASN database is an error. A broken country database only costs
// the country column.
func Open(asnPath, countryPath string) (*DB, error) {
	db := &DB{}
	if asnPath != "" {
		r, err := geoip2.Open(asnPath)
		if err != nil {
			return nil, fmt.Errorf("failed to open ASN DB at %s: %w", asnPath, err)
		}
		db.asn = r
	}

	if countryPath != "" {
		r, err := geoip2.Open(countryPath)
		if err != nil {
			logger.Log.Warnf("Failed to open Country DB at %s: %v. Country data will be missing.", countryPath, err)
		} else {
			db.country = r
		}
	}
	return db, nil
}

func (d *DB) Lookup(addr netip.Addr) Result {
	res := Result{ISP: Unknown, Country: Unknown}
	if d == nil || !addr.IsValid() {
		return res
	}
	ip := net.IP(addr.Unmap().AsSlice())

	if d.asn != nil {
		res.ISP = "Unknown"
		if asn, err := d.asn.ASN(ip); err == nil && asn.AutonomousSystemOrganization != "" {
			res.ISP = asn.AutonomousSystemOrganization
		}
	}
	if d.country != nil {
		res.Country = "XX"
		if c, err := d.country.Country(ip); err == nil && c.Country.IsoCode != "" {
			res.Country = c.Country.IsoCode
		}
	}
	return res
}

func (d *DB) Close() {
	if d == nil {
		return
	}
	if d.asn != nil {
		d.asn.Close()
	}
	if d.country != nil {
		d.country.Close()
	}
}

// Flag renders a two-letter country code as its regional indicator pair.
func Flag(countryCode string) string {
	if len(countryCode) != 2 {
		return "🌐"
	}
	countryCode = strings.ToUpper(countryCode)
	return string(rune(countryCode[0])+127397) + string(rune(countryCode[1])+127397)
}
