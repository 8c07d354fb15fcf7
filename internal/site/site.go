package site

// NavItem is an entry of the main navigation, shared by the navbar, the
// mobile menu and the footer.
type NavItem struct {
	Label string `yaml:"label" validate:"required"`
	Path  string `yaml:"path" validate:"required,startswith=/"`
}

type Category struct {
	Title       string `yaml:"title" validate:"required"`
	Icon        string `yaml:"icon" validate:"required"`
	Path        string `yaml:"path" validate:"required,startswith=/"`
	Description string `yaml:"description"`
}

// Image is displayed from Src and swapped once for Fallback if it fails to
// load.
type Image struct {
	Src      string `yaml:"src" validate:"required"`
	Alt      string `yaml:"alt"`
	Fallback string `yaml:"fallback" validate:"omitempty,url"`
}

type Hero struct {
	Title        string  `yaml:"title" validate:"required"`
	Subtitle     string  `yaml:"subtitle"`
	Image        Image   `yaml:"image"`
	CallToAction NavItem `yaml:"callToAction"`
}

type About struct {
	Title    string  `yaml:"title" validate:"required"`
	Text     string  `yaml:"text"`
	Image    Image   `yaml:"image"`
	ReadMore NavItem `yaml:"readMore"`
}

type Contact struct {
	Name    string `yaml:"name" validate:"required"`
	Address string `yaml:"address"`
	Phone   string `yaml:"phone"`
	Email   string `yaml:"email" validate:"omitempty,email"`
}

type SocialLink struct {
	Label string `yaml:"label" validate:"required"`
	URL   string `yaml:"url" validate:"required"`
	Icon  string `yaml:"icon" validate:"required"`
}

type UserMenuItem struct {
	NavItem `yaml:",inline"`
	Icon    string `yaml:"icon"`
}

type Site struct {
	Title      string         `yaml:"title" validate:"required"`
	Logo       Image          `yaml:"logo"`
	NavItems   []NavItem      `yaml:"navItems" validate:"required,dive"`
	UserMenu   []UserMenuItem `yaml:"userMenu" validate:"dive"`
	Categories []Category     `yaml:"categories" validate:"dive"`
	Hero       Hero           `yaml:"hero"`
	About      About          `yaml:"about"`
	Contact    Contact        `yaml:"contact"`
	Socials    []SocialLink   `yaml:"socials" validate:"dive"`
	Copyright  string         `yaml:"copyright"`
}

func NewDefault() *Site {
	return &Site{
		Title: "Academia de Ingeniería",
		Logo: Image{
			Src: "/assets/img/logo.svg",
			Alt: "Logo de Academia Ingeniería",
		},
		NavItems: []NavItem{
			{Label: "Simulaciones", Path: "/simulaciones"},
			{Label: "Aplicaciones Móviles", Path: "/appmovil"},
			{Label: "Proyecto Investigación", Path: "/investigaciones"},
			{Label: "Podcast", Path: "/podcast"},
		},
		UserMenu: []UserMenuItem{
			{NavItem: NavItem{Label: "Iniciar Sesión", Path: "/login"}, Icon: "log-out"},
			{NavItem: NavItem{Label: "Ayuda / Soporte", Path: "/ayuda"}, Icon: "help-circle"},
		},
		Categories: []Category{
			{Title: "Simulaciones", Icon: "cpu", Path: "/simulaciones", Description: "Modelos interactivos de física e ingeniería."},
			{Title: "Investigación", Icon: "book-open", Path: "/investigaciones", Description: "Publicaciones y proyectos de la facultad."},
			{Title: "Matemáticas", Icon: "sigma", Path: "/matematicas", Description: "Herramientas y guías para el cálculo avanzado."},
		},
		Hero: Hero{
			Title:    "Innovación y Excelencia en Ingeniería",
			Subtitle: "Explora nuestras simulaciones interactivas, proyectos de investigación de vanguardia y recursos académicos.",
			Image: Image{
				Src:      "https://placehold.co/1200x500/3C64C9/ffffff?text=HERO+Academico",
				Alt:      "Fondo de Ingeniería",
				Fallback: "https://placehold.co/1200x500/4F46E5/ffffff?text=Academia+de+Ingenieria",
			},
			CallToAction: NavItem{Label: "Ir a Simulaciones", Path: "/simulaciones"},
		},
		About: About{
			Title: "¿Quiénes somos?",
			Text:  "Somos la Facultad de Ingeniería, comprometida con la formación de líderes y el avance de la ciencia y la tecnología en la región. Nuestra misión es transformar el futuro a través de la educación de calidad.",
			Image: Image{
				Src:      "https://placehold.co/600x400/2a4fa2/ffffff?text=Quienes+Somos",
				Alt:      "Edificio de la Universidad",
				Fallback: "https://placehold.co/600x400/3C64C9/ffffff?text=Edificio",
			},
			ReadMore: NavItem{Label: "Conoce más", Path: "/quienes-somos"},
		},
		Contact: Contact{
			Name:    "Ingeniería",
			Address: "Calle Ficticia No. 10-20, Popayán, Colombia",
			Phone:   "PBX: (602) 555-5555",
			Email:   "contacto@uniautonoma.edu",
		},
		Socials: []SocialLink{
			{Label: "Facebook", URL: "#", Icon: "facebook"},
			{Label: "Instagram", URL: "#", Icon: "instagram"},
		},
		Copyright: "Ingeniería Autónoma. Todos los derechos reservados. | Desarrollado por la Facultad de Ingeniería",
	}
}
