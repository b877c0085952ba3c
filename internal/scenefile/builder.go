package scenefile

import (
	"fmt"
	"strings"

	"github.com/gogpu/canvas"
	"github.com/gogpu/canvas/geom"
	"github.com/gogpu/canvas/layout"
)

// Object types.
const (
	TypeRect  = "rect"
	TypeText  = "text"
	TypeGroup = "group"
)

type builder struct {
	path  string
	scene *Scene
	seq   map[string]int
}

// Build turns a decoded scene document into canvas objects.
func Build(path string, dto YAMLScene) (*Scene, error) {
	b := &builder{
		path: path,
		scene: &Scene{
			Name: dto.Name,
			byID: make(map[string]canvas.Shape),
			ids:  make(map[canvas.Shape]string),
		},
		seq: make(map[string]int),
	}
	for i, o := range dto.Objects {
		obj, err := b.object(fmt.Sprintf("objects[%d]", i), o)
		if err != nil {
			return nil, err
		}
		b.scene.Objects = append(b.scene.Objects, obj)
	}
	return b.scene, nil
}

func (b *builder) object(field string, o YAMLObject) (canvas.Shape, error) {
	typ := strings.ToLower(strings.TrimSpace(o.Type))
	if typ == "" {
		typ = TypeRect
	}

	opts, err := b.options(field, o)
	if err != nil {
		return nil, err
	}

	var obj canvas.Shape
	switch typ {
	case TypeRect:
		obj = canvas.NewRect(append(opts, position(o)...)...)
	case TypeText:
		t, err := canvas.NewText(o.Text, o.FontSize, append(opts, position(o)...)...)
		if err != nil {
			return nil, invalidField(b.path, field+".text", err.Error())
		}
		obj = t
	case TypeGroup:
		g, err := b.group(field, o, opts)
		if err != nil {
			return nil, err
		}
		obj = g
	default:
		return nil, invalidField(b.path, field+".type", fmt.Sprintf("unsupported type %q", o.Type))
	}

	if err := b.register(field, o.ID, typ, obj); err != nil {
		return nil, err
	}
	return obj, nil
}

func (b *builder) group(field string, o YAMLObject, opts []canvas.Option) (*canvas.Group, error) {
	members := make([]canvas.Shape, 0, len(o.Objects))
	for i, m := range o.Objects {
		obj, err := b.object(fmt.Sprintf("%s.objects[%d]", field, i), m)
		if err != nil {
			return nil, err
		}
		members = append(members, obj)
	}

	gopts := []canvas.GroupOption{
		canvas.WithObjectOptions(opts...),
		canvas.WithObjectsRelativeToGroup(o.ObjectsRelativeToGroup),
	}
	if o.Strategy != "" {
		s, err := layout.NewStrategy(o.Strategy)
		if err != nil {
			return nil, invalidField(b.path, field+".strategy", err.Error())
		}
		gopts = append(gopts, canvas.WithStrategy(s))
	}
	if o.ClipPath != nil {
		clipField := field + ".clip_path"
		if t := strings.ToLower(o.ClipPath.Type); t == TypeGroup {
			return nil, invalidField(b.path, clipField+".type", "clip path cannot be a group")
		}
		clip, err := b.object(clipField, *o.ClipPath)
		if err != nil {
			return nil, err
		}
		gopts = append(gopts, canvas.WithClipPath(clip))
	}
	if o.Left != nil {
		gopts = append(gopts, canvas.WithGroupLeft(*o.Left))
	}
	if o.Top != nil {
		gopts = append(gopts, canvas.WithGroupTop(*o.Top))
	}

	g, err := canvas.NewGroup(members, gopts...)
	if err != nil {
		return nil, invalidField(b.path, field+".objects", err.Error())
	}
	return g, nil
}

// options maps the fields shared by every object type, except position.
func (b *builder) options(field string, o YAMLObject) ([]canvas.Option, error) {
	originX, err := origin(o.OriginX)
	if err != nil {
		return nil, invalidField(b.path, field+".origin_x", err.Error())
	}
	originY, err := origin(o.OriginY)
	if err != nil {
		return nil, invalidField(b.path, field+".origin_y", err.Error())
	}
	if o.Width < 0 || o.Height < 0 {
		return nil, invalidField(b.path, field, "width and height must not be negative")
	}

	scaleX, scaleY := 1.0, 1.0
	if o.ScaleX != nil {
		scaleX = *o.ScaleX
	}
	if o.ScaleY != nil {
		scaleY = *o.ScaleY
	}

	opts := []canvas.Option{
		canvas.WithAngle(o.Angle),
		canvas.WithScale(scaleX, scaleY),
		canvas.WithSkew(o.SkewX, o.SkewY),
		canvas.WithFlip(o.FlipX, o.FlipY),
		canvas.WithOrigin(originX, originY),
		canvas.WithAbsolutePositioned(o.AbsolutePositioned),
	}
	if o.Width > 0 || o.Height > 0 {
		opts = append(opts, canvas.WithSize(o.Width, o.Height))
	}
	return opts, nil
}

func (b *builder) register(field, id, typ string, obj canvas.Shape) error {
	if id == "" {
		b.seq[typ]++
		id = fmt.Sprintf("%s-%d", typ, b.seq[typ])
	}
	if _, dup := b.scene.byID[id]; dup {
		return invalidField(b.path, field+".id", fmt.Sprintf("duplicate id %q", id))
	}
	b.scene.byID[id] = obj
	b.scene.ids[obj] = id
	return nil
}

func position(o YAMLObject) []canvas.Option {
	var left, top float64
	if o.Left != nil {
		left = *o.Left
	}
	if o.Top != nil {
		top = *o.Top
	}
	return []canvas.Option{canvas.WithPosition(left, top)}
}

func origin(s string) (geom.Origin, error) {
	if s == "" {
		return geom.OriginLeft, nil
	}
	return geom.ParseOrigin(s)
}
