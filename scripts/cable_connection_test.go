package scripts

import (
	"ChargeSim/internal/behaviour"
	"ChargeSim/internal/xr"
	"math/rand"
	"testing"
)

func TestBothConnectedFollowsLatestState(t *testing.T) {
	cable, _, _ := newCable(&recordingPlayer{})
	cable.SetOnBothConnected(func() {})

	rng := rand.New(rand.NewSource(7))
	head, car := false, false
	for i := 0; i < 500; i++ {
		end := Connector(rng.Intn(2))
		connect := rng.Intn(2) == 0
		if connect {
			cable.Connect(end)
		} else {
			cable.Disconnect(end)
		}
		if end == ConnectorHead {
			head = connect
		} else {
			car = connect
		}

		if cable.BothConnected() != (head && car) {
			t.Fatalf("step %d: Expected BothConnected %v, got %v", i, head && car, cable.BothConnected())
		}
	}
}

func TestBothConnectedCallbackFiresOnce(t *testing.T) {
	cable, _, _ := newCable(&recordingPlayer{})
	fired := 0
	cable.SetOnBothConnected(func() { fired++ })

	cable.Connect(ConnectorHead)
	if fired != 0 {
		t.Fatalf("Expected no fire with one end plugged, got %d", fired)
	}
	cable.Connect(ConnectorCar)
	if fired != 1 {
		t.Fatalf("Expected 1 fire once both are plugged, got %d", fired)
	}

	cable.Disconnect(ConnectorCar)
	cable.Connect(ConnectorCar)
	cable.Disconnect(ConnectorHead)
	cable.Connect(ConnectorHead)

	if fired != 1 {
		t.Errorf("Expected callback to stay consumed, fired %d times", fired)
	}
	if !cable.BothConnected() {
		t.Error("BothConnected should not depend on the callback state")
	}
}

func TestCarPluggedChangedOnlyForCarEnd(t *testing.T) {
	cable, _, _ := newCable(&recordingPlayer{})
	var events []bool
	cable.OnCarPluggedChanged(func(connected bool) { events = append(events, connected) })

	cable.Connect(ConnectorHead)
	cable.Connect(ConnectorCar)
	cable.Disconnect(ConnectorHead)
	cable.Disconnect(ConnectorCar)

	if len(events) != 2 {
		t.Fatalf("Expected 2 car events, got %d", len(events))
	}
	if !events[0] || events[1] {
		t.Errorf("Expected [true false], got %v", events)
	}
}

func TestConnectorFeedback(t *testing.T) {
	player := &recordingPlayer{}
	cable, head, car := newCable(player)
	cable.Start()

	if head.Material != "disconnected" || car.Material != "disconnected" {
		t.Fatalf("Expected both indicators disconnected on start, got %s/%s", head.Material, car.Material)
	}

	cable.Connect(ConnectorHead)
	if head.Material != "connected" {
		t.Errorf("Expected head indicator connected, got %s", head.Material)
	}
	if car.Material != "disconnected" {
		t.Errorf("Car indicator should be untouched, got %s", car.Material)
	}

	cable.Disconnect(ConnectorHead)
	if player.count("connect") != 1 || player.count("disconnect") != 1 {
		t.Errorf("Expected one connect and one disconnect cue, got %v", player.clips)
	}
}

func TestBindSocketRoutesEvents(t *testing.T) {
	cable, _, _ := newCable(&recordingPlayer{})
	socketObj := behaviour.NewGameObject("CarSocket")
	socket := xr.NewSocket(0.3, "")
	socketObj.AddComponent(socket)
	cable.BindSocket(socket, ConnectorCar)

	plug := behaviour.NewGameObject("Plug")
	socket.Attach(plug)
	if !cable.IsConnected(ConnectorCar) {
		t.Error("Expected car end connected after socket attach")
	}

	socket.Detach()
	if cable.IsConnected(ConnectorCar) {
		t.Error("Expected car end disconnected after socket detach")
	}
	if cable.IsConnected(ConnectorHead) {
		t.Error("Head end should be untouched")
	}
}
