package encode

type EncodeOption func(*EncState)

// EncodeColors colors the output with c.
func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) { es.Color = c.Color }
}
