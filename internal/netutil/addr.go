package netutil

import (
	"net"
	"strings"
)

// TCPPortAvailable reports whether addr can be bound for listening.
func TCPPortAvailable(addr string) bool {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return false
	}
	_ = ln.Close()
	return true
}

// BrowseURL turns a listen address into a URL another device can open.
// Wildcard hosts are replaced with the first LAN address of this machine.
func BrowseURL(listen string) string {
	host, port, err := net.SplitHostPort(listen)
	if err != nil {
		return "http://" + listen + "/"
	}
	ip := net.ParseIP(host)
	if host == "" || (ip != nil && ip.IsUnspecified()) {
		host = "127.0.0.1"
		if lan := LANIP(); lan != "" {
			host = lan
		}
	}
	return "http://" + net.JoinHostPort(host, port) + "/"
}

// LANIP returns the first up, non-loopback unicast address, preferring IPv4.
func LANIP() string {
	ifaces, _ := net.Interfaces()
	var v6 string
	for _, iface := range ifaces {
		if (iface.Flags&net.FlagUp) == 0 || (iface.Flags&net.FlagLoopback) != 0 {
			continue
		}
		addrs, _ := iface.Addrs()
		for _, addr := range addrs {
			ip := extractIP(addr)
			if !isLANIP(ip) {
				continue
			}
			if ip4 := ip.To4(); ip4 != nil {
				return ip4.String()
			}
			if v6 == "" {
				v6 = ip.String()
			}
		}
	}
	return v6
}

func extractIP(addr net.Addr) net.IP {
	switch v := addr.(type) {
	case *net.IPNet:
		return v.IP
	case *net.IPAddr:
		return v.IP
	default:
		s := addr.String()
		if i := strings.IndexByte(s, '/'); i >= 0 {
			s = s[:i]
		}
		return net.ParseIP(s)
	}
}

func isLANIP(ip net.IP) bool {
	if ip == nil {
		return false
	}
	if ip.IsLoopback() || ip.IsLinkLocalMulticast() || ip.IsLinkLocalUnicast() || ip.IsMulticast() || ip.IsUnspecified() {
		return false
	}
	return ip.IsGlobalUnicast()
}
