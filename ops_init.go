// ops_init.go - wires the per-family initializers into the base op table.

package z80

func (c *CPU) initBaseOps() {
	c.initLoadOps()
	c.initALUOps()
	c.initControlOps()
}
