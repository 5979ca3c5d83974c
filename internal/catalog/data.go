package catalog

import "pencilmatch/internal/colour"

func pencil(brand, name, code string, r, g, b uint8) Pencil {
	return Pencil{
		Brand: brand,
		Name:  name,
		Code:  code,
		RGB:   colour.RGB{R: r, G: g, B: b},
	}
}

var prismacolor = []Pencil{
	// Reds
	pencil(Prismacolor, "Crimson Red", "PC924", 220, 20, 60),
	pencil(Prismacolor, "Scarlet Lake", "PC923", 255, 36, 0),
	pencil(Prismacolor, "True Red", "PC922", 237, 28, 36),
	pencil(Prismacolor, "Magenta", "PC930", 255, 0, 255),
	pencil(Prismacolor, "Hot Pink", "PC993", 255, 105, 180),
	pencil(Prismacolor, "Process Red", "PC994", 237, 28, 36),
	pencil(Prismacolor, "Mulberry", "PC995", 197, 75, 140),
	pencil(Prismacolor, "Raspberry", "PC1030", 227, 11, 92),
	pencil(Prismacolor, "Pink Rose", "PC1016", 255, 182, 193),
	pencil(Prismacolor, "Blush Pink", "PC928", 255, 192, 203),

	// Oranges
	pencil(Prismacolor, "Orange", "PC918", 255, 165, 0),
	pencil(Prismacolor, "Poppy Red", "PC922", 255, 99, 71),
	pencil(Prismacolor, "Pale Vermillion", "PC921", 255, 160, 122),
	pencil(Prismacolor, "Peach", "PC939", 255, 218, 185),
	pencil(Prismacolor, "Apricot", "PC1003", 251, 206, 177),
	pencil(Prismacolor, "Light Peach", "PC927", 255, 239, 213),

	// Yellows
	pencil(Prismacolor, "Canary Yellow", "PC916", 255, 255, 153),
	pencil(Prismacolor, "Lemon Yellow", "PC915", 255, 255, 0),
	pencil(Prismacolor, "Yellow Ochre", "PC942", 238, 203, 173),
	pencil(Prismacolor, "Goldenrod", "PC1034", 218, 165, 32),
	pencil(Prismacolor, "Cream", "PC914", 255, 253, 208),
	pencil(Prismacolor, "Pale Yellow", "PC1011", 255, 255, 224),

	// Greens
	pencil(Prismacolor, "True Green", "PC910", 50, 205, 50),
	pencil(Prismacolor, "Grass Green", "PC909", 124, 252, 0),
	pencil(Prismacolor, "Kelly Green", "PC908", 76, 187, 23),
	pencil(Prismacolor, "Forest Green", "PC946", 34, 139, 34),
	pencil(Prismacolor, "Olive Green", "PC911", 128, 128, 0),
	pencil(Prismacolor, "Jade Green", "PC1021", 0, 168, 107),
	pencil(Prismacolor, "Apple Green", "PC912", 141, 182, 0),
	pencil(Prismacolor, "Limepeel", "PC1005", 191, 255, 0),
	pencil(Prismacolor, "Spring Green", "PC913", 0, 255, 127),

	// Blues
	pencil(Prismacolor, "True Blue", "PC903", 0, 123, 191),
	pencil(Prismacolor, "Ultramarine", "PC902", 65, 105, 225),
	pencil(Prismacolor, "Cerulean Blue", "PC901", 0, 123, 167),
	pencil(Prismacolor, "Sky Blue Light", "PC904", 135, 206, 235),
	pencil(Prismacolor, "Light Blue", "PC906", 173, 216, 230),
	pencil(Prismacolor, "Powder Blue", "PC1087", 176, 224, 230),
	pencil(Prismacolor, "Periwinkle", "PC1025", 204, 204, 255),
	pencil(Prismacolor, "Non-Photo Blue", "PC919", 164, 221, 237),

	// Purples
	pencil(Prismacolor, "Violet", "PC932", 138, 43, 226),
	pencil(Prismacolor, "Purple", "PC931", 128, 0, 128),
	pencil(Prismacolor, "Lavender", "PC934", 230, 230, 250),
	pencil(Prismacolor, "Lilac", "PC956", 200, 162, 200),
	pencil(Prismacolor, "Orchid", "PC1009", 218, 112, 214),
	pencil(Prismacolor, "Plum", "PC1026", 221, 160, 221),

	// Browns
	pencil(Prismacolor, "Dark Brown", "PC947", 101, 67, 33),
	pencil(Prismacolor, "Light Brown", "PC1001", 205, 133, 63),
	pencil(Prismacolor, "Burnt Ochre", "PC943", 204, 119, 34),
	pencil(Prismacolor, "Raw Sienna", "PC945", 160, 82, 45),
	pencil(Prismacolor, "Burnt Sienna", "PC948", 138, 54, 15),
	pencil(Prismacolor, "Van Dyke Brown", "PC949", 94, 38, 18),
	pencil(Prismacolor, "Sepia", "PC948", 112, 66, 20),
	pencil(Prismacolor, "Tan", "PC942", 210, 180, 140),

	// Greys and blacks
	pencil(Prismacolor, "Black", "PC935", 0, 0, 0),
	pencil(Prismacolor, "Cool Grey 90%", "PC1063", 51, 51, 51),
	pencil(Prismacolor, "Cool Grey 70%", "PC1061", 102, 102, 102),
	pencil(Prismacolor, "Cool Grey 50%", "PC1059", 153, 153, 153),
	pencil(Prismacolor, "Cool Grey 30%", "PC1057", 179, 179, 179),
	pencil(Prismacolor, "Cool Grey 10%", "PC1055", 230, 230, 230),
	pencil(Prismacolor, "Warm Grey 90%", "PC1070", 68, 63, 58),
	pencil(Prismacolor, "Warm Grey 70%", "PC1068", 128, 120, 111),
	pencil(Prismacolor, "Warm Grey 50%", "PC1066", 153, 146, 138),
	pencil(Prismacolor, "White", "PC938", 255, 255, 255),
}

var faberCastell = []Pencil{
	// Reds
	pencil(FaberCastell, "Alizarin Crimson", "FC226", 227, 38, 54),
	pencil(FaberCastell, "Deep Red", "FC223", 196, 30, 58),
	pencil(FaberCastell, "Middle Cadmium Red", "FC217", 231, 65, 69),
	pencil(FaberCastell, "Pale Geranium Lake", "FC121", 239, 100, 108),
	pencil(FaberCastell, "Pink Carmine", "FC127", 221, 101, 134),
	pencil(FaberCastell, "Pink Madder Lake", "FC129", 221, 108, 158),
	pencil(FaberCastell, "Rose Carmine", "FC126", 217, 87, 125),
	pencil(FaberCastell, "Magenta", "FC133", 202, 52, 120),

	// Oranges
	pencil(FaberCastell, "Orange Glaze", "FC113", 237, 118, 66),
	pencil(FaberCastell, "Cadmium Orange", "FC115", 245, 128, 37),
	pencil(FaberCastell, "Dark Cadmium Orange", "FC118", 218, 102, 46),
	pencil(FaberCastell, "Burnt Orange", "FC117", 191, 91, 44),
	pencil(FaberCastell, "Light Orange", "FC109", 252, 177, 102),
	pencil(FaberCastell, "Peach", "FC132", 245, 189, 156),

	// Yellows
	pencil(FaberCastell, "Cadmium Yellow", "FC107", 254, 221, 45),
	pencil(FaberCastell, "Light Cadmium Yellow", "FC105", 254, 242, 97),
	pencil(FaberCastell, "Dark Cadmium Yellow", "FC108", 250, 200, 45),
	pencil(FaberCastell, "Naples Ochre", "FC131", 241, 194, 125),
	pencil(FaberCastell, "Raw Ochre", "FC179", 206, 160, 102),
	pencil(FaberCastell, "Chrome Yellow", "FC100", 255, 231, 79),

	// Greens
	pencil(FaberCastell, "Sap Green", "FC170", 102, 140, 55),
	pencil(FaberCastell, "Permanent Green", "FC166", 76, 136, 74),
	pencil(FaberCastell, "Permanent Green Olive", "FC167", 124, 144, 70),
	pencil(FaberCastell, "Chrome Oxide Green", "FC176", 102, 128, 83),
	pencil(FaberCastell, "Hookers Green", "FC159", 50, 102, 74),
	pencil(FaberCastell, "Viridian", "FC156", 64, 130, 109),
	pencil(FaberCastell, "May Green", "FC171", 145, 189, 135),
	pencil(FaberCastell, "Leaf Green", "FC112", 119, 176, 71),
	pencil(FaberCastell, "Grass Green", "FC166", 108, 171, 98),

	// Blues
	pencil(FaberCastell, "Ultramarine", "FC120", 63, 105, 170),
	pencil(FaberCastell, "Prussian Blue", "FC246", 45, 82, 129),
	pencil(FaberCastell, "Phthalo Blue", "FC110", 43, 108, 166),
	pencil(FaberCastell, "Sky Blue", "FC146", 125, 178, 219),
	pencil(FaberCastell, "Light Blue", "FC140", 149, 194, 222),
	pencil(FaberCastell, "Cobalt Blue", "FC143", 83, 141, 195),
	pencil(FaberCastell, "Delft Blue", "FC141", 97, 156, 204),

	// Purples
	pencil(FaberCastell, "Red Violet", "FC194", 154, 71, 131),
	pencil(FaberCastell, "Blue Violet", "FC137", 121, 104, 172),
	pencil(FaberCastell, "Manganese Violet", "FC160", 145, 95, 150),
	pencil(FaberCastell, "Mauve", "FC249", 168, 132, 172),
	pencil(FaberCastell, "Light Magenta", "FC119", 216, 108, 174),

	// Browns
	pencil(FaberCastell, "Burnt Sienna", "FC283", 158, 79, 49),
	pencil(FaberCastell, "Raw Umber", "FC280", 130, 102, 68),
	pencil(FaberCastell, "Burnt Umber", "FC280", 123, 63, 44),
	pencil(FaberCastell, "Van Dyke Brown", "FC176", 102, 51, 43),
	pencil(FaberCastell, "Sepia", "FC175", 115, 74, 48),
	pencil(FaberCastell, "Caput Mortuum Violet", "FC263", 127, 70, 65),
	pencil(FaberCastell, "Light Ochre", "FC177", 204, 153, 102),

	// Greys and blacks
	pencil(FaberCastell, "Black", "FC199", 0, 0, 0),
	pencil(FaberCastell, "Payne's Grey", "FC181", 77, 93, 108),
	pencil(FaberCastell, "Neutral Tint", "FC235", 102, 102, 102),
	pencil(FaberCastell, "Warm Grey I", "FC270", 204, 194, 179),
	pencil(FaberCastell, "Warm Grey II", "FC271", 179, 166, 149),
	pencil(FaberCastell, "Warm Grey III", "FC272", 153, 138, 119),
	pencil(FaberCastell, "Warm Grey IV", "FC273", 128, 111, 93),
	pencil(FaberCastell, "Cold Grey I", "FC230", 204, 204, 204),
	pencil(FaberCastell, "Cold Grey II", "FC231", 179, 179, 179),
	pencil(FaberCastell, "Cold Grey III", "FC232", 153, 153, 153),
	pencil(FaberCastell, "Cold Grey IV", "FC233", 128, 128, 128),
	pencil(FaberCastell, "White", "FC101", 255, 255, 255),
}

var caranDAche = []Pencil{
	// Reds
	pencil(CaranDAche, "Scarlet", "070", 237, 28, 36),
	pencil(CaranDAche, "Vermillion", "060", 227, 66, 52),
	pencil(CaranDAche, "Light Cadmium Red", "061", 255, 99, 71),
	pencil(CaranDAche, "Permanent Red", "065", 220, 20, 60),
	pencil(CaranDAche, "Carmine", "080", 150, 0, 24),
	pencil(CaranDAche, "Bordeaux Red", "075", 111, 30, 43),
	pencil(CaranDAche, "Anthraquinoid Pink", "081", 255, 105, 180),
	pencil(CaranDAche, "Rose Pink", "481", 255, 182, 193),

	// Oranges
	pencil(CaranDAche, "Orange", "030", 255, 165, 0),
	pencil(CaranDAche, "Apricot", "041", 251, 206, 177),
	pencil(CaranDAche, "Flesh", "040", 255, 218, 185),
	pencil(CaranDAche, "Light Flesh", "042", 255, 239, 213),
	pencil(CaranDAche, "Burnt Orange", "051", 204, 85, 0),

	// Yellows
	pencil(CaranDAche, "Lemon Yellow", "240", 255, 255, 0),
	pencil(CaranDAche, "Cadmium Yellow", "010", 255, 237, 0),
	pencil(CaranDAche, "Middle Cadmium Yellow", "020", 255, 215, 0),
	pencil(CaranDAche, "Golden Yellow", "021", 255, 193, 7),
	pencil(CaranDAche, "Yellow Ochre", "025", 238, 203, 173),
	pencil(CaranDAche, "Raw Sienna", "036", 160, 82, 45),

	// Greens
	pencil(CaranDAche, "Light Green", "470", 144, 238, 144),
	pencil(CaranDAche, "Grass Green", "461", 124, 252, 0),
	pencil(CaranDAche, "Green", "210", 0, 128, 0),
	pencil(CaranDAche, "Emerald Green", "200", 80, 200, 120),
	pencil(CaranDAche, "Veronese Green", "201", 0, 179, 152),
	pencil(CaranDAche, "Bluish Green", "202", 0, 150, 136),
	pencil(CaranDAche, "Forest Green", "229", 34, 139, 34),
	pencil(CaranDAche, "Olive Green", "019", 128, 128, 0),

	// Blues
	pencil(CaranDAche, "Light Blue", "161", 173, 216, 230),
	pencil(CaranDAche, "Sky Blue", "171", 135, 206, 235),
	pencil(CaranDAche, "Cobalt Blue", "140", 0, 71, 171),
	pencil(CaranDAche, "Ultramarine", "120", 65, 105, 225),
	pencil(CaranDAche, "Prussian Blue", "159", 0, 49, 83),
	pencil(CaranDAche, "Night Blue", "155", 25, 25, 112),
	pencil(CaranDAche, "Periwinkle Blue", "141", 204, 204, 255),

	// Purples
	pencil(CaranDAche, "Violet", "100", 138, 43, 226),
	pencil(CaranDAche, "Purple", "110", 128, 0, 128),
	pencil(CaranDAche, "Magenta", "090", 255, 0, 255),
	pencil(CaranDAche, "Light Magenta", "191", 255, 119, 255),
	pencil(CaranDAche, "Lilac", "192", 200, 162, 200),

	// Browns
	pencil(CaranDAche, "Burnt Sienna", "037", 138, 54, 15),
	pencil(CaranDAche, "Van Dyke Brown", "076", 94, 38, 18),
	pencil(CaranDAche, "Burnt Umber", "049", 138, 51, 36),
	pencil(CaranDAche, "Raw Umber", "048", 115, 74, 18),
	pencil(CaranDAche, "Sepia", "407", 112, 66, 20),
	pencil(CaranDAche, "Brown Ochre", "035", 150, 113, 23),

	// Greys and blacks
	pencil(CaranDAche, "Black", "009", 0, 0, 0),
	pencil(CaranDAche, "Payne's Grey", "508", 83, 104, 120),
	pencil(CaranDAche, "Neutral Tint", "007", 102, 102, 102),
	pencil(CaranDAche, "French Grey 10%", "002", 230, 230, 230),
	pencil(CaranDAche, "French Grey 30%", "003", 179, 179, 179),
	pencil(CaranDAche, "French Grey 50%", "004", 128, 128, 128),
	pencil(CaranDAche, "French Grey 70%", "005", 77, 77, 77),
	pencil(CaranDAche, "White", "001", 255, 255, 255),
}

var derwent = []Pencil{
	// Reds
	pencil(Derwent, "Crimson Lake", "20", 220, 20, 60),
	pencil(Derwent, "Deep Cadmium", "15", 227, 38, 54),
	pencil(Derwent, "Geranium Lake", "17", 231, 84, 128),
	pencil(Derwent, "Rose Pink", "23", 255, 182, 193),
	pencil(Derwent, "Flesh Pink", "24", 255, 218, 185),
	pencil(Derwent, "Magenta", "28", 255, 0, 255),
	pencil(Derwent, "Imperial Purple", "26", 102, 2, 60),

	// Oranges
	pencil(Derwent, "Spectrum Orange", "11", 255, 165, 0),
	pencil(Derwent, "Deep Chrome", "12", 255, 140, 0),
	pencil(Derwent, "Middle Chrome", "13", 255, 185, 15),
	pencil(Derwent, "Orange Chrome", "14", 255, 117, 24),
	pencil(Derwent, "Flesh", "132", 255, 203, 164),

	// Yellows
	pencil(Derwent, "Lemon Cadmium", "01", 255, 255, 0),
	pencil(Derwent, "Deep Cadmium", "04", 255, 215, 0),
	pencil(Derwent, "Naples Yellow", "16", 250, 218, 94),
	pencil(Derwent, "Straw Yellow", "02", 227, 207, 87),
	pencil(Derwent, "Gold", "22", 255, 215, 0),
	pencil(Derwent, "Raw Sienna", "58", 160, 82, 45),

	// Greens
	pencil(Derwent, "May Green", "42", 145, 189, 135),
	pencil(Derwent, "Grass Green", "51", 124, 252, 0),
	pencil(Derwent, "Sap Green", "49", 48, 128, 20),
	pencil(Derwent, "Cedar Green", "50", 72, 120, 88),
	pencil(Derwent, "Olive Green", "52", 128, 128, 0),
	pencil(Derwent, "Bottle Green", "44", 0, 106, 78),
	pencil(Derwent, "Emerald Green", "46", 80, 200, 120),
	pencil(Derwent, "Viridian", "47", 64, 130, 109),

	// Blues
	pencil(Derwent, "Sky Blue", "33", 135, 206, 235),
	pencil(Derwent, "Smalt Blue", "35", 0, 123, 167),
	pencil(Derwent, "Ultramarine", "32", 65, 105, 225),
	pencil(Derwent, "Prussian Blue", "36", 0, 49, 83),
	pencil(Derwent, "Indigo", "38", 75, 0, 130),
	pencil(Derwent, "Delft Blue", "37", 97, 156, 204),
	pencil(Derwent, "Kingfisher Blue", "31", 0, 139, 208),

	// Purples
	pencil(Derwent, "Blue Violet Lake", "27", 138, 43, 226),
	pencil(Derwent, "Violet", "29", 148, 0, 211),
	pencil(Derwent, "Purple", "25", 128, 0, 128),
	pencil(Derwent, "Red Violet", "21", 199, 21, 133),
	pencil(Derwent, "Mauve", "30", 224, 176, 255),

	// Browns
	pencil(Derwent, "Burnt Sienna", "61", 158, 79, 49),
	pencil(Derwent, "Light Sienna", "60", 205, 133, 63),
	pencil(Derwent, "Burnt Umber", "54", 138, 51, 36),
	pencil(Derwent, "Raw Umber", "55", 115, 74, 18),
	pencil(Derwent, "Vandyke Brown", "56", 94, 38, 18),
	pencil(Derwent, "Chocolate", "57", 123, 63, 0),
	pencil(Derwent, "Copper Beech", "62", 141, 102, 57),

	// Greys and blacks
	pencil(Derwent, "Ivory Black", "67", 0, 0, 0),
	pencil(Derwent, "Lamp Black", "66", 25, 25, 25),
	pencil(Derwent, "Gunmetal", "68", 77, 93, 108),
	pencil(Derwent, "French Grey", "70", 150, 150, 150),
	pencil(Derwent, "Silver Grey", "71", 192, 192, 192),
	pencil(Derwent, "Dove Grey", "69", 128, 128, 128),
	pencil(Derwent, "Chinese White", "72", 255, 255, 255),
}

var staedtler = []Pencil{
	// Reds
	pencil(Staedtler, "Carmine", "29", 227, 38, 54),
	pencil(Staedtler, "Scarlet Red", "28", 237, 28, 36),
	pencil(Staedtler, "Red", "21", 208, 2, 27),
	pencil(Staedtler, "Pink", "23", 255, 182, 193),
	pencil(Staedtler, "Magenta", "25", 255, 0, 255),
	pencil(Staedtler, "Rose", "26", 255, 0, 127),

	// Oranges
	pencil(Staedtler, "Orange", "4", 255, 165, 0),
	pencil(Staedtler, "Light Orange", "54", 255, 200, 124),
	pencil(Staedtler, "Peach", "405", 255, 218, 185),

	// Yellows
	pencil(Staedtler, "Lemon Yellow", "1", 255, 255, 0),
	pencil(Staedtler, "Yellow", "12", 255, 237, 0),
	pencil(Staedtler, "Light Yellow", "11", 255, 255, 153),
	pencil(Staedtler, "Yellow Orange", "14", 255, 185, 15),
	pencil(Staedtler, "Yellow Ochre", "17", 238, 203, 173),

	// Greens
	pencil(Staedtler, "Light Green", "5", 144, 238, 144),
	pencil(Staedtler, "Green", "53", 0, 128, 0),
	pencil(Staedtler, "Dark Green", "57", 0, 100, 0),
	pencil(Staedtler, "Leaf Green", "51", 119, 176, 71),
	pencil(Staedtler, "Pine Green", "59", 34, 139, 34),

	// Blues
	pencil(Staedtler, "Light Blue", "30", 173, 216, 230),
	pencil(Staedtler, "Sky Blue", "31", 135, 206, 235),
	pencil(Staedtler, "Blue", "3", 0, 123, 191),
	pencil(Staedtler, "Dark Blue", "33", 0, 0, 139),
	pencil(Staedtler, "Ultramarine", "37", 65, 105, 225),

	// Purples
	pencil(Staedtler, "Violet", "6", 138, 43, 226),
	pencil(Staedtler, "Purple", "62", 128, 0, 128),
	pencil(Staedtler, "Light Violet", "61", 221, 160, 221),

	// Browns
	pencil(Staedtler, "Brown", "76", 165, 42, 42),
	pencil(Staedtler, "Light Brown", "77", 205, 133, 63),
	pencil(Staedtler, "Van Dyke Brown", "75", 94, 38, 18),
	pencil(Staedtler, "Burnt Sienna", "74", 138, 54, 15),

	// Greys and blacks
	pencil(Staedtler, "Black", "9", 0, 0, 0),
	pencil(Staedtler, "Grey", "90", 128, 128, 128),
	pencil(Staedtler, "Light Grey", "91", 192, 192, 192),
	pencil(Staedtler, "White", "0", 255, 255, 255),
}

var kohINoor = []Pencil{
	// Reds
	pencil(KohINoor, "Carmine", "3720", 220, 20, 60),
	pencil(KohINoor, "Scarlet", "3700", 237, 28, 36),
	pencil(KohINoor, "Vermillion", "3710", 227, 66, 52),
	pencil(KohINoor, "Pink", "3730", 255, 182, 193),
	pencil(KohINoor, "Rose", "3740", 255, 20, 147),
	pencil(KohINoor, "Magenta", "3760", 255, 0, 255),

	// Oranges
	pencil(KohINoor, "Orange", "3800", 255, 165, 0),
	pencil(KohINoor, "Light Orange", "3810", 255, 200, 124),
	pencil(KohINoor, "Peach", "3820", 255, 218, 185),
	pencil(KohINoor, "Apricot", "3830", 251, 206, 177),

	// Yellows
	pencil(KohINoor, "Lemon", "3000", 255, 255, 0),
	pencil(KohINoor, "Yellow", "3010", 255, 237, 0),
	pencil(KohINoor, "Golden Yellow", "3020", 255, 215, 0),
	pencil(KohINoor, "Yellow Ochre", "3070", 238, 203, 173),
	pencil(KohINoor, "Naples Yellow", "3030", 250, 218, 94),

	// Greens
	pencil(KohINoor, "Light Green", "3340", 144, 238, 144),
	pencil(KohINoor, "Green", "3360", 0, 128, 0),
	pencil(KohINoor, "Dark Green", "3380", 0, 100, 0),
	pencil(KohINoor, "Emerald Green", "3350", 80, 200, 120),
	pencil(KohINoor, "Olive Green", "3390", 128, 128, 0),
	pencil(KohINoor, "Forest Green", "3370", 34, 139, 34),

	// Blues
	pencil(KohINoor, "Light Blue", "3150", 173, 216, 230),
	pencil(KohINoor, "Sky Blue", "3140", 135, 206, 235),
	pencil(KohINoor, "Blue", "3130", 0, 123, 191),
	pencil(KohINoor, "Dark Blue", "3100", 0, 0, 139),
	pencil(KohINoor, "Ultramarine", "3120", 65, 105, 225),
	pencil(KohINoor, "Prussian Blue", "3110", 0, 49, 83),

	// Purples
	pencil(KohINoor, "Violet", "3900", 138, 43, 226),
	pencil(KohINoor, "Purple", "3910", 128, 0, 128),
	pencil(KohINoor, "Light Violet", "3920", 221, 160, 221),
	pencil(KohINoor, "Red Violet", "3930", 199, 21, 133),

	// Browns
	pencil(KohINoor, "Brown", "3460", 165, 42, 42),
	pencil(KohINoor, "Light Brown", "3470", 205, 133, 63),
	pencil(KohINoor, "Dark Brown", "3450", 101, 67, 33),
	pencil(KohINoor, "Burnt Sienna", "3440", 138, 54, 15),
	pencil(KohINoor, "Raw Sienna", "3430", 160, 82, 45),
	pencil(KohINoor, "Van Dyke Brown", "3420", 94, 38, 18),

	// Greys and blacks
	pencil(KohINoor, "Black", "3999", 0, 0, 0),
	pencil(KohINoor, "Grey", "3990", 128, 128, 128),
	pencil(KohINoor, "Light Grey", "3980", 192, 192, 192),
	pencil(KohINoor, "Dark Grey", "3970", 64, 64, 64),
	pencil(KohINoor, "White", "3000", 255, 255, 255),
}
