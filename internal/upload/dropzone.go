package upload

// DropZone tracks the cosmetic drag state of the drop target
type DropZone struct {
	active bool
}

// Enter marks a drag entering the zone
func (d *DropZone) Enter() { d.active = true }

// Over marks a drag hovering over the zone
func (d *DropZone) Over() { d.active = true }

// Leave marks a drag leaving the zone without dropping
func (d *DropZone) Leave() { d.active = false }

// Drop marks the end of a drag; the files themselves go through Ingest
func (d *DropZone) Drop() { d.active = false }

// Active reports whether a drag is in progress
func (d *DropZone) Active() bool { return d.active }
