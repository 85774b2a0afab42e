package slider

// FormValue returns the field name and the plain string value for form
// submission. ok is false when no field name was configured.
func (c *Controller) FormValue() (name, value string, ok bool) {
	if c.opts.Name == "" {
		return "", "", false
	}
	return c.opts.Name, num(c.value), true
}

// FormInputID is the id of the hidden form input paired with the slider.
func (c *Controller) FormInputID() string {
	return "input:" + c.id
}
