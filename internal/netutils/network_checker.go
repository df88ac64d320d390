package netutils

import (
	"context"
	"net"
	"os"
	"time"

	probing "github.com/prometheus-community/pro-bing"
)

const DefaultHostTimeout = 2 * time.Second

// icmpPackets Количество эхо-запросов при проверке ICMP.
const icmpPackets = 3

// NetworkChecker Проверка доступности хоста WebQuery по TCP и ICMP.
type NetworkChecker struct{}

// NewNetworkChecker Конструктор.
func NewNetworkChecker() *NetworkChecker {
	return &NetworkChecker{}
}

// CheckTCP Хост доступен, если на address:port удалось открыть TCP-соединение.
// При timeout <= 0 используется DefaultHostTimeout.
func (nc *NetworkChecker) CheckTCP(ctx context.Context, address string, port string, timeout time.Duration) bool {
	if timeout <= 0 {
		timeout = DefaultHostTimeout
	}

	dialer := net.Dialer{Timeout: timeout}

	conn, err := dialer.DialContext(ctx, "tcp", net.JoinHostPort(address, port))
	if err != nil {
		return false
	}

	_ = conn.Close()

	return true
}

// CheckICMP Хост доступен, если на эхо-запросы пришёл хотя бы один ответ.
// При timeout <= 0 используется DefaultHostTimeout.
func (nc *NetworkChecker) CheckICMP(ctx context.Context, address string, timeout time.Duration) bool {
	if timeout <= 0 {
		timeout = DefaultHostTimeout
	}

	pinger, err := probing.NewPinger(address)
	if err != nil {
		return false
	}

	// без root-прав используется непривилегированный UDP-пинг
	pinger.SetPrivileged(os.Geteuid() == 0)
	pinger.Count = icmpPackets
	pinger.Timeout = timeout

	received := make(chan bool, 1)

	go func() {
		defer close(received)

		if runErr := pinger.Run(); runErr != nil {
			received <- false
			return
		}

		received <- pinger.Statistics().PacketsRecv > 0
	}()

	select {
	case <-ctx.Done():
		pinger.Stop()
		return false
	case ok := <-received:
		return ok
	}
}

// Reachability Результат проверки доступности хоста.
type Reachability struct {
	Host string `json:"host"`
	Port string `json:"port"`
	TCP  bool   `json:"tcp"`
	ICMP *bool  `json:"icmp,omitempty"`
}

// Probe Проверяет хост по TCP и, если icmp == true, по ICMP.
func Probe(ctx context.Context, checker Checker, host, port string, icmp bool, timeout time.Duration) Reachability {
	res := Reachability{
		Host: host,
		Port: port,
		TCP:  checker.CheckTCP(ctx, host, port, timeout),
	}

	if icmp {
		ok := checker.CheckICMP(ctx, host, timeout)
		res.ICMP = &ok
	}

	return res
}
