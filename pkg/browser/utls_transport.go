package browser

import (
	"bufio"
	"io"
	"net"
	"net/http"
	"sync"

	tls "github.com/refraction-networking/utls"
	"golang.org/x/net/http2"
)

// firefoxTransport is an http.RoundTripper that performs the TLS handshake
// with a uTLS Firefox ClientHello. Some login frontends fingerprint the
// handshake and serve bot challenges to clients that look like Go programs;
// presenting a browser fingerprint keeps the HTML flow reachable.
type firefoxTransport struct {
	// mu protects the connections map
	mu sync.Mutex
	// connections caches HTTP/2 client connections per host
	connections map[string]*http2.ClientConn
	// fallback serves plain http:// requests
	fallback http.RoundTripper
}

// NewFirefoxTransport creates a RoundTripper that presents a Firefox TLS
// fingerprint for https requests. Non-TLS requests pass through a standard
// transport.
func NewFirefoxTransport() http.RoundTripper {
	return &firefoxTransport{
		connections: make(map[string]*http2.ClientConn),
		fallback:    http.DefaultTransport.(*http.Transport).Clone(),
	}
}

// RoundTrip implements http.RoundTripper.
func (t *firefoxTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.URL.Scheme != "https" {
		return t.fallback.RoundTrip(req)
	}

	hostname := req.URL.Hostname()
	addr := req.URL.Host
	if req.URL.Port() == "" {
		addr = net.JoinHostPort(hostname, "443")
	}

	// Reuse a pooled HTTP/2 connection when one is available.
	t.mu.Lock()
	if cc, ok := t.connections[hostname]; ok && cc.CanTakeNewRequest() {
		t.mu.Unlock()
		return t.roundTripH2(hostname, cc, req)
	}
	t.mu.Unlock()

	dialer := &net.Dialer{}
	conn, err := dialer.DialContext(req.Context(), "tcp", addr)
	if err != nil {
		return nil, err
	}

	tlsConfig := &tls.Config{ServerName: hostname}
	tlsConn := tls.UClient(conn, tlsConfig, tls.HelloFirefox_Auto)

	if err := tlsConn.Handshake(); err != nil {
		conn.Close()
		return nil, err
	}

	if tlsConn.ConnectionState().NegotiatedProtocol == "h2" {
		tr := &http2.Transport{}
		cc, err := tr.NewClientConn(tlsConn)
		if err != nil {
			tlsConn.Close()
			return nil, err
		}
		t.mu.Lock()
		t.connections[hostname] = cc
		t.mu.Unlock()
		return t.roundTripH2(hostname, cc, req)
	}

	// HTTP/1.1 over the fingerprinted connection. The connection is closed
	// when the response body is closed.
	if err := req.Write(tlsConn); err != nil {
		tlsConn.Close()
		return nil, err
	}
	resp, err := http.ReadResponse(bufio.NewReader(tlsConn), req)
	if err != nil {
		tlsConn.Close()
		return nil, err
	}
	resp.Body = &connBody{body: resp.Body, conn: tlsConn}
	return resp, nil
}

// roundTripH2 issues a request over a pooled HTTP/2 connection, dropping the
// connection from the pool when it fails.
func (t *firefoxTransport) roundTripH2(hostname string, cc *http2.ClientConn, req *http.Request) (*http.Response, error) {
	resp, err := cc.RoundTrip(req)
	if err != nil {
		t.mu.Lock()
		if cached, ok := t.connections[hostname]; ok && cached == cc {
			delete(t.connections, hostname)
		}
		t.mu.Unlock()
		return nil, err
	}
	return resp, nil
}

// connBody ties the lifetime of an HTTP/1.1 connection to its response body.
type connBody struct {
	body io.ReadCloser
	conn net.Conn
}

func (b *connBody) Read(p []byte) (int, error) {
	return b.body.Read(p)
}

func (b *connBody) Close() error {
	err := b.body.Close()
	if cerr := b.conn.Close(); err == nil {
		err = cerr
	}
	return err
}
