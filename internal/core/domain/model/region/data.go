package region

type directoryEntry struct {
	name     string
	communes []string
}

// bundledDirectory is ordered by official wilaya code (Adrar = 1 ... El Meniaa = 58).
var bundledDirectory = []directoryEntry{
	{"Adrar", []string{"Adrar", "Reggane", "Aoulef", "Tsabit", "Fenoughil"}},
	{"Chlef", []string{"Chlef", "Tenes", "Boukadir", "Oued Fodda", "El Karimia"}},
	{"Laghouat", []string{"Laghouat", "Aflou", "Ksar El Hirane", "Hassi R'Mel"}},
	{"Oum El Bouaghi", []string{"Oum El Bouaghi", "Ain Beida", "Ain M'Lila", "Meskiana"}},
	{"Batna", []string{"Batna", "Barika", "Arris", "Merouana", "N'Gaous", "Tazoult"}},
	{"Bejaia", []string{"Bejaia", "Akbou", "Amizour", "El Kseur", "Sidi Aich", "Souk El Tenine"}},
	{"Biskra", []string{"Biskra", "Tolga", "Sidi Okba", "El Kantara"}},
	{"Bechar", []string{"Bechar", "Kenadsa", "Abadla"}},
	{"Blida", []string{"Blida", "Boufarik", "Bouinan", "Larbaa", "Mouzaia", "Ouled Yaich", "Beni Mered", "El Affroun"}},
	{"Bouira", []string{"Bouira", "Lakhdaria", "Sour El Ghozlane", "M'Chedallah", "Ain Bessem"}},
	{"Tamanrasset", []string{"Tamanrasset", "Abalessa"}},
	{"Tebessa", []string{"Tebessa", "Bir El Ater", "Cheria", "El Aouinet"}},
	{"Tlemcen", []string{"Tlemcen", "Maghnia", "Remchi", "Ghazaouet", "Nedroma", "Mansourah"}},
	{"Tiaret", []string{"Tiaret", "Sougueur", "Frenda", "Ksar Chellala"}},
	{"Tizi Ouzou", []string{"Tizi Ouzou", "Azazga", "Draa Ben Khedda", "Larbaa Nath Irathen", "Ain El Hammam", "Tigzirt"}},
	{"Alger", []string{
		"Alger Centre", "Bab El Oued", "Bab Ezzouar", "Baraki", "Birkhadem", "Bir Mourad Rais", "Cheraga",
		"Dar El Beida", "Draria", "El Biar", "Hussein Dey", "Hydra", "Kouba", "Rouiba", "Sidi M'Hamed", "Zeralda",
	}},
	{"Djelfa", []string{"Djelfa", "Ain Oussera", "Messaad", "Hassi Bahbah"}},
	{"Jijel", []string{"Jijel", "Taher", "El Milia"}},
	{"Setif", []string{"Setif", "El Eulma", "Ain Oulmene", "Bougaa", "Ain Arnat"}},
	{"Saida", []string{"Saida", "Ain El Hadjar"}},
	{"Skikda", []string{"Skikda", "Collo", "El Harrouch", "Azzaba"}},
	{"Sidi Bel Abbes", []string{"Sidi Bel Abbes", "Telagh", "Ben Badis"}},
	{"Annaba", []string{"Annaba", "El Bouni", "El Hadjar", "Berrahal"}},
	{"Guelma", []string{"Guelma", "Oued Zenati", "Bouchegouf"}},
	{"Constantine", []string{"Constantine", "El Khroub", "Hamma Bouziane", "Ain Smara", "Didouche Mourad"}},
	{"Medea", []string{"Medea", "Berrouaghia", "Ksar El Boukhari", "Tablat"}},
	{"Mostaganem", []string{"Mostaganem", "Ain Tedles", "Sidi Ali", "Hassi Mameche"}},
	{"M'Sila", []string{"M'Sila", "Bou Saada", "Sidi Aissa", "Ain El Melh"}},
	{"Mascara", []string{"Mascara", "Sig", "Mohammadia", "Tighennif"}},
	{"Ouargla", []string{"Ouargla", "Hassi Messaoud", "Rouissat"}},
	{"Oran", []string{"Oran", "Bir El Djir", "Es Senia", "Arzew", "Ain El Turck", "Gdyel"}},
	{"El Bayadh", []string{"El Bayadh", "Bougtob", "Brezina"}},
	{"Illizi", []string{"Illizi", "Bordj Omar Driss"}},
	{"Bordj Bou Arreridj", []string{"Bordj Bou Arreridj", "Ras El Oued", "Bordj Ghedir", "Medjana"}},
	{"Boumerdes", []string{"Boumerdes", "Boudouaou", "Bordj Menaiel", "Khemis El Khechna", "Dellys", "Thenia"}},
	{"El Tarf", []string{"El Tarf", "El Kala", "Drean", "Besbes"}},
	{"Tindouf", []string{"Tindouf"}},
	{"Tissemsilt", []string{"Tissemsilt", "Theniet El Had", "Bordj Bou Naama"}},
	{"El Oued", []string{"El Oued", "Guemar", "Debila", "Robbah"}},
	{"Khenchela", []string{"Khenchela", "Kais", "Chechar"}},
	{"Souk Ahras", []string{"Souk Ahras", "Sedrata", "M'Daourouch"}},
	{"Tipaza", []string{"Tipaza", "Kolea", "Cherchell", "Hadjout", "Fouka", "Bou Ismail"}},
	{"Mila", []string{"Mila", "Chelghoum Laid", "Ferdjioua", "Tadjenanet"}},
	{"Ain Defla", []string{"Ain Defla", "Khemis Miliana", "Miliana", "El Attaf"}},
	{"Naama", []string{"Naama", "Mecheria", "Ain Sefra"}},
	{"Ain Temouchent", []string{"Ain Temouchent", "Beni Saf", "Hammam Bou Hadjar", "El Malah"}},
	{"Ghardaia", []string{"Ghardaia", "Metlili", "Berriane", "Guerrara"}},
	{"Relizane", []string{"Relizane", "Oued Rhiou", "Mazouna", "Zemmoura"}},
	{"Timimoun", []string{"Timimoun", "Aougrout"}},
	{"Bordj Badji Mokhtar", []string{"Bordj Badji Mokhtar", "Timiaouine"}},
	{"Ouled Djellal", []string{"Ouled Djellal", "Sidi Khaled"}},
	{"Beni Abbes", []string{"Beni Abbes", "Kerzaz", "Igli"}},
	{"In Salah", []string{"In Salah", "In Ghar"}},
	{"In Guezzam", []string{"In Guezzam", "Tin Zaouatine"}},
	{"Touggourt", []string{"Touggourt", "Temacine", "Megarine"}},
	{"Djanet", []string{"Djanet", "Bordj El Haouas"}},
	{"El M'Ghair", []string{"El M'Ghair", "Djamaa"}},
	{"El Meniaa", []string{"El Meniaa", "Hassi Gara"}},
}

// bundledTariffs holds {home, pickupPoint} fees in DZD.
var bundledTariffs = map[string][2]int64{
	"Alger": {400, 250},

	"Blida":     {590, 390},
	"Boumerdes": {590, 390},
	"Tipaza":    {590, 390},

	"Bouira":     {650, 400},
	"Medea":      {650, 400},
	"Ain Defla":  {650, 400},
	"Tizi Ouzou": {650, 400},
	"Chlef":      {650, 400},

	"Bejaia":             {750, 450},
	"Setif":              {750, 450},
	"Bordj Bou Arreridj": {750, 450},
	"Mila":               {750, 450},
	"Jijel":              {750, 450},
	"Skikda":             {750, 450},
	"Constantine":        {750, 450},
	"Annaba":             {750, 450},
	"Guelma":             {750, 450},
	"El Tarf":            {750, 450},
	"Souk Ahras":         {750, 450},
	"Oum El Bouaghi":     {750, 450},
	"Batna":              {750, 450},
	"Khenchela":          {750, 450},
	"Tebessa":            {750, 450},
	"Mostaganem":         {750, 450},
	"Relizane":           {750, 450},
	"Mascara":            {750, 450},
	"Oran":               {750, 450},
	"Sidi Bel Abbes":     {750, 450},
	"Tlemcen":            {750, 450},
	"Ain Temouchent":     {750, 450},
	"Saida":              {750, 450},
	"Tiaret":             {750, 450},
	"Tissemsilt":         {750, 450},
	"M'Sila":             {750, 450},
	"Djelfa":             {750, 450},

	"Laghouat":      {900, 600},
	"Biskra":        {900, 600},
	"El Bayadh":     {900, 600},
	"Naama":         {900, 600},
	"Ouled Djellal": {900, 600},
	"El Oued":       {900, 600},
	"Ghardaia":      {900, 600},
	"Ouargla":       {900, 600},
	"Touggourt":     {900, 600},
	"El M'Ghair":    {900, 600},
	"Bechar":        {900, 600},
	"El Meniaa":     {900, 600},

	"Adrar":               {1400, 900},
	"Tamanrasset":         {1400, 900},
	"Illizi":              {1400, 900},
	"Tindouf":             {1400, 900},
	"Timimoun":            {1400, 900},
	"Bordj Badji Mokhtar": {1400, 900},
	"Beni Abbes":          {1400, 900},
	"In Salah":            {1400, 900},
	"In Guezzam":          {1400, 900},
	"Djanet":              {1400, 900},
}
