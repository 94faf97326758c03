package gallery

// Images resolves image references, replacing any that failed to load with
// the placeholder. A substitution is permanent for the session.
type Images struct {
	refs        map[string][]string
	placeholder string
	failed      map[imageKey]bool
}

func NewImages(refs map[string][]string, placeholder string) *Images {
	return &Images{
		refs:        refs,
		placeholder: placeholder,
		failed:      make(map[imageKey]bool),
	}
}

// MarkFailed substitutes the placeholder for an image. It reports true only
// the first time a given image is substituted.
func (im *Images) MarkFailed(id string, index int) bool {
	if index < 0 || index >= len(im.refs[id]) {
		return false
	}
	k := imageKey{id, index}
	if im.failed[k] {
		return false
	}
	im.failed[k] = true
	return true
}

// Ref returns the reference to display for an image.
func (im *Images) Ref(id string, index int) (string, bool) {
	refs := im.refs[id]
	if index < 0 || index >= len(refs) {
		return "", false
	}
	if im.failed[imageKey{id, index}] {
		return im.placeholder, true
	}
	return refs[index], true
}

// Original returns the configured reference, ignoring substitutions.
func (im *Images) Original(id string, index int) (string, bool) {
	refs := im.refs[id]
	if index < 0 || index >= len(refs) {
		return "", false
	}
	return refs[index], true
}

func (im *Images) Failed(id string, index int) bool {
	return im.failed[imageKey{id, index}]
}

// Refs returns the display references for every image of an item.
func (im *Images) Refs(id string) []string {
	out := make([]string, len(im.refs[id]))
	for i := range out {
		out[i], _ = im.Ref(id, i)
	}
	return out
}

// FailedAll reports, per image of an item, whether it was substituted.
func (im *Images) FailedAll(id string) []bool {
	out := make([]bool, len(im.refs[id]))
	for i := range out {
		out[i] = im.failed[imageKey{id, i}]
	}
	return out
}
