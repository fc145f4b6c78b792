package scenefile

// xmlScene matches the scene description schema.
type xmlScene struct {
	Name    string      `xml:"Name,attr"`
	Objects []xmlObject `xml:"Object"`
}

type xmlObject struct {
	Type     string `xml:"Type,attr"`
	Name     string `xml:"Name,attr"`
	Vertices string `xml:"Vertices,attr"` // "x y z; x y z; ..."
	Center   string `xml:"Center,attr"`
	Radius   string `xml:"Radius,attr"`
	Height   string `xml:"Height,attr"`
	Cap      string `xml:"Cap,attr"`

	Color     string `xml:"Color,attr"`
	Shininess string `xml:"Shininess,attr"`
	Specular  string `xml:"Specular,attr"`

	Shading     string `xml:"Shading,attr"`
	CheckerSize string `xml:"CheckerSize,attr"`
	CheckerEven string `xml:"CheckerEven,attr"`
	CheckerOdd  string `xml:"CheckerOdd,attr"`
	Texture     string `xml:"Texture,attr"`

	Reflection      string `xml:"Reflection,attr"`
	Refraction      string `xml:"Refraction,attr"`
	RefractiveIndex string `xml:"RefractiveIndex,attr"`
	Transparency    string `xml:"Transparency,attr"`
}
