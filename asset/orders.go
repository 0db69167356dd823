package asset

// DefaultOrders returns the built-in recipe catalog in TOML
// Colors are linear RGB, section 0 is poured first
const DefaultOrders = `
# === Starter tier ===

[[orders]]
name = "Red Shot"
difficulty = 0
sections = [
    { color = [1.0, 0.0, 0.0], size = 2 },
]

[[orders]]
name = "Blue Lagoon"
difficulty = 0
sections = [
    { color = [0.0, 0.05, 1.0], size = 3 },
]

# === Layered ===

[[orders]]
name = "Sunset"
difficulty = 1
sections = [
    { color = [1.0, 0.0, 0.0], size = 2 },
    { color = [0.78, 1.0, 0.0], size = 2 },
]

[[orders]]
name = "Deep Sea"
difficulty = 2
sections = [
    { color = [0.0, 0.05, 1.0], size = 3 },
    { color = [1.0, 0.21, 0.21], size = 1 },
]

# === Mixed ===

[[orders]]
name = "Purple Rain"
difficulty = 3
sections = [
    { color = [0.5, 0.02, 0.5], size = 3 },
]

[[orders]]
name = "Tricolor"
difficulty = 4
sections = [
    { color = [1.0, 0.0, 0.0], size = 1 },
    { color = [0.78, 1.0, 0.0], size = 1 },
    { color = [0.0, 0.05, 1.0], size = 1 },
]
`
