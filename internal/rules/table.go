package rules

// DefaultTable declares the ingress surface of a gaming instance: desktop
// access over RDP or VNC plus the Sunshine game-stream ports.
func DefaultTable() Table {
	return Table{
		"rdp": {
			"tcp": {
				{Port: 3389, Description: "Remote Desktop"},
			},
		},
		"vnc": {
			"tcp": {
				{Port: 5900, Description: "VNC"},
			},
		},
		"sunshine": {
			"tcp": {
				{Port: 47984, Description: "Sunshine web UI (HTTPS)"},
				{Port: 47989, Description: "Sunshine web UI (HTTP)"},
				{Port: 48010, Description: "Sunshine RTSP"},
			},
			"udp": {
				{Port: 47998, Description: "Sunshine video"},
				{Port: 47999, Description: "Sunshine control"},
				{Port: 48000, Description: "Sunshine audio"},
				{Port: 48002, Description: "Sunshine mic"},
			},
		},
	}
}
