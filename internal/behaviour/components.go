package behaviour

import "github.com/go-gl/mathgl/mgl32"

// ComponentType defines the category of a component
type ComponentType string

const (
	ComponentTypeScript      ComponentType = "Script"
	ComponentTypeRenderer    ComponentType = "Renderer"
	ComponentTypeAudio       ComponentType = "Audio"
	ComponentTypeText        ComponentType = "Text"
	ComponentTypeOverlay     ComponentType = "Overlay"
	ComponentTypeInteraction ComponentType = "Interaction"
	ComponentTypeCustom      ComponentType = "Custom"
)

// TypedComponent extends Component with type information
type TypedComponent interface {
	Component
	GetComponentType() ComponentType
	GetTypeName() string
}

// RendererComponent carries the material id the host renders the object with.
type RendererComponent struct {
	BaseComponent
	Material string
}

func NewRendererComponent(material string) *RendererComponent {
	return &RendererComponent{Material: material}
}

func (r *RendererComponent) GetComponentType() ComponentType {
	return ComponentTypeRenderer
}

func (r *RendererComponent) GetTypeName() string {
	return "RendererComponent"
}

func (r *RendererComponent) SetMaterial(material string) {
	r.Material = material
}

// SoundPlayer plays a named clip. Implementations must not block.
type SoundPlayer interface {
	Play(clip string)
}

// AudioSourceComponent forwards play requests to the host sound player.
type AudioSourceComponent struct {
	BaseComponent
	Player SoundPlayer

	LastClip string
	Played   int
}

func NewAudioSourceComponent(player SoundPlayer) *AudioSourceComponent {
	return &AudioSourceComponent{Player: player}
}

func (a *AudioSourceComponent) GetComponentType() ComponentType {
	return ComponentTypeAudio
}

func (a *AudioSourceComponent) GetTypeName() string {
	return "AudioSourceComponent"
}

func (a *AudioSourceComponent) Play(clip string) {
	if clip == "" {
		return
	}
	a.LastClip = clip
	a.Played++
	if a.Player != nil {
		a.Player.Play(clip)
	}
}

// TextComponent is a world-space label.
type TextComponent struct {
	BaseComponent
	Text string
}

func NewTextComponent() *TextComponent {
	return &TextComponent{}
}

func (t *TextComponent) GetComponentType() ComponentType {
	return ComponentTypeText
}

func (t *TextComponent) GetTypeName() string {
	return "TextComponent"
}

func (t *TextComponent) SetText(text string) {
	t.Text = text
}

// OverlayComponent is a full-screen fade. Opacity is kept in [0,1].
type OverlayComponent struct {
	BaseComponent
	Opacity float32
}

func NewOverlayComponent(opacity float32) *OverlayComponent {
	o := &OverlayComponent{}
	o.SetOpacity(opacity)
	return o
}

func (o *OverlayComponent) GetComponentType() ComponentType {
	return ComponentTypeOverlay
}

func (o *OverlayComponent) GetTypeName() string {
	return "OverlayComponent"
}

func (o *OverlayComponent) SetOpacity(value float32) {
	o.Opacity = mgl32.Clamp(value, 0, 1)
}

// Helper function to get component type name
func GetComponentTypeName(comp Component) string {
	if typed, ok := comp.(TypedComponent); ok {
		return typed.GetTypeName()
	}
	return "Unknown"
}

// Helper function to get component category
func GetComponentCategory(comp Component) ComponentType {
	if typed, ok := comp.(TypedComponent); ok {
		return typed.GetComponentType()
	}
	return ComponentTypeCustom
}
