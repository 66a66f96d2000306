package svgpath

// Scale returns a copy of the path with every coordinate multiplied by f.
// Relative offsets and arc radii scale like coordinates; arc rotation and
// flags are left alone, so a uniform scale keeps arcs valid.
func (p *Path) Scale(f float64) *Path {
	scaled := &Path{Commands: make([]*Command, len(p.Commands))}
	for i, cmd := range p.Commands {
		args := make([]float64, len(cmd.Args))
		isArc := upper(cmd.Name) == 'A'
		for j, v := range cmd.Args {
			if isArc {
				switch j % 7 {
				case 2, 3, 4:
					args[j] = v
					continue
				}
			}
			args[j] = v * f
		}
		scaled.Commands[i] = &Command{Name: cmd.Name, Args: args}
	}
	return scaled
}
