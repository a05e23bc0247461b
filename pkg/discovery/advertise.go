// Package discovery announces and finds game servers on the local
// network via SSDP.
package discovery

import (
	"sort"
	"time"

	"golang.org/x/exp/slices"

	"github.com/google/uuid"
	ssdp "github.com/koron/go-ssdp"
)

var (
	serviceType    = "game:uno"
	serverName     = "UnoServer/1.0"
	serverUniqueId = uuid.NewString()
	cacheMaxAge, _ = time.ParseDuration("30m")
)

// Advertise the game server via SSDP at the given hostLocation.
// Close() the returned Advertiser when done.
func AdvertiseService(hostLocation string) (*ssdp.Advertiser, error) {
	return ssdp.Advertise(serviceType, serverUniqueId, hostLocation, serverName, int(cacheMaxAge.Seconds()))
}

// Find any game servers on the current LAN via SSDP.
// Returns a list of host addresses.
func FindService(waitTime time.Duration) ([]string, error) {
	servers, err := ssdp.Search(serviceType, int(waitTime.Seconds()), "")
	if err != nil {
		return nil, err
	}
	var locs []string
	for _, svr := range servers {
		if svr.Type != serviceType {
			continue
		}
		locs = append(locs, svr.Location)
	}
	sort.Strings(locs)
	locs = slices.Compact(locs)
	return locs, nil
}
