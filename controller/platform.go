package controller

import "github.com/go-gl/mathgl/mgl64"

// trackPlatform anchors the character to a moving platform it stands on
// and carries it along with the platform.
func (c *Controller) trackPlatform(ground Surface) {
	tag := c.cfg.MovingPlatform.Tag
	if ground == nil || tag == "" || !ground.HasTag(tag) {
		c.platform = nil
		return
	}
	if c.platform == nil || c.platform != ground {
		c.platform = ground
		c.platformOffset = c.body.Position().Sub(ground.Position())
	}
	c.platformPos = c.platform.Position()
	c.body.SetPosition(c.platformPos.Add(c.platformOffset))
}

// advancePlatformOffset keeps the anchor in step with the character's own
// horizontal motion on top of the platform.
func (c *Controller) advancePlatformOffset(moved mgl64.Vec2) {
	if c.platform == nil {
		return
	}
	c.platformOffset[0] += moved.X()
}
