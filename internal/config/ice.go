package config

import (
	"strings"

	"github.com/pion/webrtc/v4"
)

// ICEServers builds the ICE server list handed to clients so they construct
// their RTCPeerConnection against the same STUN/TURN set the deployment is
// provisioned with. TURN entries are included only when credentials are
// complete.
func (c *Config) ICEServers() []webrtc.ICEServer {
	out := make([]webrtc.ICEServer, 0, 2)

	if urls := cleanURLs(c.StunURLs); len(urls) > 0 {
		out = append(out, webrtc.ICEServer{URLs: urls})
	}

	urls := cleanURLs(c.TurnURLs)
	username := strings.TrimSpace(c.TurnUsername)
	credential := strings.TrimSpace(c.TurnCredential)
	if len(urls) > 0 && username != "" && credential != "" {
		out = append(out, webrtc.ICEServer{
			URLs:       urls,
			Username:   username,
			Credential: credential,
		})
	}
	return out
}

func cleanURLs(in []string) []string {
	out := make([]string, 0, len(in))
	for _, raw := range in {
		if url := strings.TrimSpace(raw); url != "" {
			out = append(out, url)
		}
	}
	return out
}
