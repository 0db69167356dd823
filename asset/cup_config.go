package asset

// DefaultCupConfig returns cup geometry in world units
const DefaultCupConfig = `
cup_small_width = 40.0
cup_small_inner_width = 32.0
cup_medium_width = 56.0
cup_medium_inner_width = 48.0
cup_large_width = 72.0
cup_large_inner_width = 64.0
cup_height = 100.0
cup_bottom_thickness = 6.0
handle_width = 10.0
divider_color = [0.1, 0.1, 0.1]
status_bar_width = 50.0
`
