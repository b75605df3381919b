package addr

import (
	"cmp"
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// SchemeExp is the URL scheme recognized by the Expo Go client.
const SchemeExp = "exp"

var urlRgx = regexp.MustCompile(fmt.Sprintf(
	`\A(?:%[1]v://)?%[2]v?(?::%[3]v)?\z`,
	`(?<SCHEME>[^:/]+)`, // Protocol scheme.
	`(?<HOST>[^:/]+)`,   // Hostname or IP address.
	`(?<PORT>[^:/]+)`,   // Port number.
))

func NewURL(scheme, host string, port uint16) *URL {
	return &URL{
		Scheme: scheme,
		Host:   host,
		Port:   port,
	}
}

// ParseURL decodes a URL of the form [scheme://][host][:port].
// Missing parts are filled from defScheme and defPort.
func ParseURL(url, defScheme string, defPort uint16) (*URL, error) {
	if url == "" {
		return NewURL("", "", 0), nil
	}

	matches := urlRgx.FindStringSubmatch(url)
	if matches == nil {
		return nil, errors.New("invalid syntax")
	}

	// Group named captures by name.
	submatches := make(map[string]string)
	for i, n := range urlRgx.SubexpNames() {
		submatches[n] = cmp.Or(submatches[n], matches[i])
	}

	scheme := strings.ToLower(cmp.Or(submatches["SCHEME"], defScheme))
	host := strings.ToLower(submatches["HOST"])

	port := defPort
	if p := submatches["PORT"]; p != "" {
		portNum, err := ParsePort(p)
		if err != nil {
			return nil, fmt.Errorf("parse port '%v': %w", p, err)
		}
		port = portNum
	}

	return NewURL(scheme, host, port), nil
}

// URL locates a development server on the local network.
type URL struct {
	Scheme string

	Host string
	Port uint16
}

func (u *URL) IsZero() bool {
	return u.Scheme == "" && u.Host == "" && u.Port == 0
}

func (u *URL) String() string {
	if u.IsZero() {
		return ""
	}
	return fmt.Sprintf("%v://%v:%v", strings.ToLower(u.Scheme), strings.ToLower(u.Host), u.Port)
}

func (u *URL) MarshalText() ([]byte, error) {
	return []byte(u.String()), nil
}

func (u *URL) UnmarshalText(text []byte) error {
	url, err := ParseURL(string(text), SchemeExp, 0)
	if err != nil {
		return err
	}
	*u = *url
	return nil
}
