package scripts

import (
	"ChargeSim/internal/behaviour"
	"ChargeSim/internal/logger"
	"ChargeSim/internal/xr"

	"go.uber.org/zap"
)

// Connector names one end of the charging cable.
type Connector int

const (
	ConnectorHead Connector = iota // plugs into the charger
	ConnectorCar                   // plugs into the car
)

func (c Connector) String() string {
	switch c {
	case ConnectorHead:
		return "head"
	case ConnectorCar:
		return "car"
	default:
		return "unknown"
	}
}

// CableConnection tracks both cable ends. The "both connected" callback is
// one-shot: it fires the first time both ends are plugged and is then cleared.
type CableConnection struct {
	behaviour.BaseComponent

	HeadIndicator        *behaviour.RendererComponent
	CarIndicator         *behaviour.RendererComponent
	Audio                *behaviour.AudioSourceComponent
	ConnectedMaterial    string
	DisconnectedMaterial string
	ConnectClip          string
	DisconnectClip       string

	headConnected   bool
	carConnected    bool
	onBothConnected func()
	carListeners    []func(connected bool)
}

func NewCableConnection() *CableConnection {
	return &CableConnection{}
}

func (c *CableConnection) GetComponentType() behaviour.ComponentType {
	return behaviour.ComponentTypeScript
}

func (c *CableConnection) GetTypeName() string {
	return "CableConnection"
}

func (c *CableConnection) Start() {
	c.paint(ConnectorHead)
	c.paint(ConnectorCar)
}

// BindSocket routes a socket's connect/disconnect events to end.
func (c *CableConnection) BindSocket(socket *xr.Socket, end Connector) {
	if socket == nil {
		return
	}
	socket.AddConnectListener(func(xr.SocketEvent) { c.Connect(end) })
	socket.AddDisconnectListener(func(xr.SocketEvent) { c.Disconnect(end) })
}

// SetOnBothConnected registers the one-shot callback, replacing any previous one.
func (c *CableConnection) SetOnBothConnected(fn func()) {
	c.onBothConnected = fn
}

// OnCarPluggedChanged subscribes to every transition of the car-side connector.
func (c *CableConnection) OnCarPluggedChanged(fn func(connected bool)) {
	if fn != nil {
		c.carListeners = append(c.carListeners, fn)
	}
}

func (c *CableConnection) Connect(end Connector) {
	c.set(end, true)
}

func (c *CableConnection) Disconnect(end Connector) {
	c.set(end, false)
}

// IsConnected reports the current state of one end.
func (c *CableConnection) IsConnected(end Connector) bool {
	if end == ConnectorHead {
		return c.headConnected
	}
	return c.carConnected
}

// BothConnected reports whether both ends are plugged right now.
func (c *CableConnection) BothConnected() bool {
	return c.headConnected && c.carConnected
}

func (c *CableConnection) set(end Connector, connected bool) {
	switch end {
	case ConnectorHead:
		c.headConnected = connected
	case ConnectorCar:
		c.carConnected = connected
	default:
		return
	}

	logger.Log.Debug("Cable connector changed",
		zap.Stringer("end", end),
		zap.Bool("connected", connected))

	c.paint(end)
	if c.Audio != nil {
		if connected {
			c.Audio.Play(c.ConnectClip)
		} else {
			c.Audio.Play(c.DisconnectClip)
		}
	}

	if end == ConnectorCar {
		for _, fn := range c.carListeners {
			fn(connected)
		}
	}

	if c.BothConnected() && c.onBothConnected != nil {
		fn := c.onBothConnected
		c.onBothConnected = nil
		logger.Log.Info("Both cable ends connected")
		fn()
	}
}

func (c *CableConnection) paint(end Connector) {
	indicator := c.HeadIndicator
	if end == ConnectorCar {
		indicator = c.CarIndicator
	}
	if indicator == nil {
		return
	}
	if c.IsConnected(end) {
		indicator.SetMaterial(c.ConnectedMaterial)
	} else {
		indicator.SetMaterial(c.DisconnectedMaterial)
	}
}
