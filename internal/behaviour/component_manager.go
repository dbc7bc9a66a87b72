package behaviour

// ComponentManager manages all GameObjects and their components
// Similar to Unity's scene management system
type ComponentManager struct {
	gameObjects []*GameObject
	toDestroy   []*GameObject
	coroutines  *Coroutines
}

func NewComponentManager() *ComponentManager {
	return &ComponentManager{
		gameObjects: make([]*GameObject, 0),
		toDestroy:   make([]*GameObject, 0),
		coroutines:  NewCoroutines(),
	}
}

// RegisterGameObject adds a GameObject to the manager and starts its components.
// Objects registered while inactive are started as well.
func (cm *ComponentManager) RegisterGameObject(obj *GameObject) {
	if obj == nil || obj.manager == cm {
		return
	}
	cm.gameObjects = append(cm.gameObjects, obj)
	obj.manager = cm
	obj.internalStart()
}

func (cm *ComponentManager) UnregisterGameObject(obj *GameObject) {
	for i, o := range cm.gameObjects {
		if o == obj {
			cm.gameObjects = append(cm.gameObjects[:i], cm.gameObjects[i+1:]...)
			cm.coroutines.StopAll(obj)
			obj.Destroy()
			obj.manager = nil
			return
		}
	}
}

// UpdateAll calls Update on all active GameObjects, then steps coroutines
func (cm *ComponentManager) UpdateAll(t Time) {
	// Process destroyed objects
	if len(cm.toDestroy) > 0 {
		for _, obj := range cm.toDestroy {
			cm.UnregisterGameObject(obj)
		}
		cm.toDestroy = cm.toDestroy[:0]
	}

	for _, obj := range cm.gameObjects {
		if obj.Active {
			obj.internalUpdate(t)
		}
	}

	cm.coroutines.Tick(t)
}

// FixedUpdateAll calls FixedUpdate on all active GameObjects
func (cm *ComponentManager) FixedUpdateAll(t Time) {
	for _, obj := range cm.gameObjects {
		if obj.Active {
			obj.internalFixedUpdate(t)
		}
	}
}

// DestroyGameObject marks a GameObject for destruction (will be removed next frame)
func (cm *ComponentManager) DestroyGameObject(obj *GameObject) {
	cm.toDestroy = append(cm.toDestroy, obj)
}

// GetAllGameObjects returns all registered GameObjects
func (cm *ComponentManager) GetAllGameObjects() []*GameObject {
	return cm.gameObjects
}

// Coroutines returns the task runner stepped by UpdateAll
func (cm *ComponentManager) Coroutines() *Coroutines {
	return cm.coroutines
}

// Clear removes all GameObjects
func (cm *ComponentManager) Clear() {
	for _, obj := range cm.gameObjects {
		obj.Destroy()
		obj.manager = nil
	}
	cm.gameObjects = cm.gameObjects[:0]
	cm.toDestroy = cm.toDestroy[:0]
	cm.coroutines.Clear()
}
