package rules

// Corrections is the accumulated proper-noun and punctuation fix list for
// the quiz datasets. It is data, not logic: entries were collected by
// eyeballing frequency reports of past runs. Order is significant and the
// constructor collapses duplicate find strings last-write-wins.
var Corrections = NewReplacementMap(
	Pair{"Godine", "godine"},
	Pair{"rosija,", "Rosija,"},
	Pair{"valentin", "Valentin"},
	Pair{"banjaj", "Banjaj"},
	Pair{"dbpxxkabe", "države"},
	Pair{"rahmon", "Rahmon"},
	Pair{"stiven", "Stiven"},
	Pair{"oliver", "Oliver"},
	Pair{"injca", "Injca"},
	Pair{"banjaj", "Banjaj"},
	Pair{"„", `"`},
	Pair{"“", `"`},
	Pair{"alžir", "Alžir"},
	Pair{`""`, `"`},
	Pair{"jusef", "Jusef"},
	Pair{"hatavej", "Hatavej"},
	Pair{"hale", "Hale"},
	Pair{"fajfer", "Fajfer"},
	Pair{"hatavej", "Hatavej"},
	Pair{"nikola", "Nikola"},
	Pair{"eurosong", "Eurosong"},
	Pair{"stefan", "Stefan"},
	Pair{"dragan", "Dragan"},
	Pair{"jovanović", "Jovanović"},
	Pair{"aleksandar", "Aleksandar"},
	Pair{"uefa", "UEFA"},
	Pair{"jugoslavije", "Jugoslavije"},
	Pair{"vladimir", "Vladimir"},
	Pair{"africi", "Africi"},
	Pair{"americi", "Americi"},
	Pair{"nemačkoj", "Nemačkoj"},
	Pair{"italiji", "Italiji"},
	Pair{"popović", "Popović"},
	Pair{"evropi", "Evropi"},
	Pair{"amerike", "Amerike"},
	Pair{"njujorku", "Njujorku"},
	Pair{"isidora", "Isidora"},
	Pair{"pansa", "Pansa"},
	Pair{"zzimmskimm", "zimskim"},
	Pair{"dijego", "Dijego"},
	Pair{"odanović", "Odanović"},
	Pair{"olgom", "Olgom"},
	Pair{"piterson", "Piterson"},
	Pair{"anđeles", "Anđeles"},
	Pair{"kerber", "Kerber"},
	Pair{"malik", "Malik"},
	Pair{"monro", "Monro"},
	Pair{"Bu ", ""},
	Pair{"beogradu", "Beogradu"},
	Pair{"venecueli", "Venecueli"},
	Pair{"kertis", "Kertis"},
	Pair{"branka", "Branka"},
	Pair{"ćopića", "Ćopića"},
	Pair{"skorceni", "Skorceni"},
	Pair{"holandiji", "Holandiji"},
	Pair{"Maks plank", "Maks Plank"},
	Pair{"Kil bil", "Kil Bil"},
	Pair{"petković dis", "Petković Dis"},
	Pair{"petković", "Petković"},
	Pair{"manro", "Manro"},
	Pair{"Stivi vonder", "Stivi Vonder"},
	Pair{"skandinaviji", "Skandinaviji"},
	Pair{"prelević", "Prelević"},
	Pair{"ljubek", "Ljubek"},
	Pair{"vitman", "Vitman"},
	Pair{"pirsu", "Pirsu"},
	Pair{"popović", "Popović"},
	Pair{"krunić", "Krunić"},
	Pair{"saverin", "Saverin"},
	Pair{"mjanmaru", "Mjanmaru"},
	Pair{"malden", "Malden"},
	Pair{"hornasek", "Hornasek"},
	Pair{"timora", "Timora"},
	Pair{"gotjeu", "Gotjeu"},
	Pair{"ivanović", "Ivanović"},
	Pair{"australiji", "Australiji"},
	Pair{"švedskoj", "Švedskoj"},
	Pair{"bolpačić", "Bolpačić"},
	Pair{"Mona Liz", "Mona Liz"},
	Pair{"patrik", "Patrik"},
	Pair{"Haris", "Haris"},
	Pair{"kanada", "Kanada"},
	Pair{"de žaneir", "De Žaneir"},
	Pair{"eliot", "Eliot"},
	Pair{"afrike", "Afrike"},
	Pair{"andrića", "Andrića"},
	Pair{` "`, `"`},
	Pair{" ?", "?"},
	Pair{" .", "."},
	Pair{" !", "!"},
	Pair{`" `, `"`},
	Pair{"rohas", "Rohas"},
	Pair{"najrobiju", "Najrobiju"},
	Pair{"kristi", "Kristi"},
	Pair{"pelagić", "Pelagić"},
	Pair{"marija", "Marija"},
	Pair{"hauer", "Hauer"},
	Pair{"anketil", "Anketil"},
	Pair{"rajh", "Rajh"},
	Pair{"wilhelm", "Wilhelm"},
	Pair{"reich", "Reich"},
	Pair{"nele karajlić", "Nele Karajlić"},
	Pair{"karajlić", "Karajlić"},
	Pair{"iranu", "Iranu"},
	Pair{"kolumbije", "Kolumbije"},
	Pair{"regan", "Regan"},
	Pair{"malteze", "Malteze"},
	Pair{"haksli", "Haksli"},
	Pair{"martina", "Martina"},
	Pair{"miloš", "Miloš"},
	Pair{"jovića", "Jovića"},
	Pair{"delon", "Delon"},
	Pair{"holandije", "Holandije"},
	Pair{"dubrovnik", "Dubrovnik"},
	Pair{"lajović", "Lajović"},
	Pair{"kapone", "Kapone"},
	Pair{"belgiji", "Belgiji"},
	Pair{"todorović", "Todorović"},
	Pair{"da gama", "da Gama"},
	Pair{"marino", "Marino"},
	Pair{"bogart", "Bogart"},
	Pair{"ćopić", "Ćopić"},
	Pair{"lorens", "Lorens"},
	Pair{"nušić", "Nušić"},
	Pair{"montano", "Montano"},
	Pair{"raspućin", "Raspućin"},
	Pair{"arabija", "Arabija"},
	Pair{"spasić", "Spasić"},
	Pair{"mekre", "Mekre"},
	Pair{"bata živojinović", "Bata Živojinović"},
	Pair{"živojinović", "Živojinović"},
	Pair{"džonson", "Džonson"},
	Pair{"Loh nes", "Loh Nes"},
	Pair{"baltimoru", "Baltimoru"},
	Pair{"obradović", "Obradović"},
	Pair{"vasiljev", "Vasiljev"},
	Pair{"de sika", "de Sika"},
	Pair{"šekularac", "Šekularac"},
	Pair{"ramacoti", "Ramacoti"},
	Pair{"petrović", "Petrović"},
	Pair{"njegoš", "Njegoš"},
	Pair{`"baz"`, `"Baz"`},
	Pair{"stanković", "Stanković"},
	Pair{"nišavi", "Nišavi"},
	Pair{"japanu", "Japanu"},
	Pair{"leonov", "Leonov"},
	Pair{"real madrid", "Real Madrid"},
	Pair{"madrid", "Madrid"},
	Pair{"berlinu", "Berlinu"},
	Pair{"sudan", "Sudan"},
	Pair{"meksiku", "Meksiku"},
	Pair{"gojković", "Gojković"},
	Pair{"cune gojković", "Cune Gojković"},
	Pair{"luksemburg", "Luksemburg"},
	Pair{"savić", "Savić"},
	Pair{"makijaveli", "Makijaveli"},
	Pair{"indije", "Indije"},
	Pair{"mionici", "Mionici"},
	Pair{"šubašić", "Šubašić"},
	Pair{"indonezije", "Indonezije"},
	Pair{"korać", "Korać"},
	Pair{"bojanić", "Bojanić"},
	Pair{"gidra", "Gidra"},
	Pair{"stokholmu", "Stokholmu"},
	Pair{"bičer stou", "Bičer Stou"},
	Pair{"šekularac", "Šekularac"},
	Pair{"australije", "Australije"},
	Pair{"finskoj", "Finskoj"},
	Pair{"gandolfini", "Gandolfini"},
	Pair{"jorović", "Jorović"},
	Pair{"bulatović", "Bulatović"},
	Pair{"robert", "Robert"},
	Pair{"huku", "Huku"},
	Pair{"stenli", "Stenli"},
	Pair{"metjuz", "Metjuz"},
	Pair{"garašanin", "Garašanin"},
	Pair{"savić", "Savić"},
	Pair{"uelbek", "Uelbek"},
	Pair{"milutinović", "Milutinović"},
	Pair{"mika", "Mika"},
	Pair{"antić", "Antić"},
	Pair{"hoking", "Hoking"},
	Pair{"sparou", "Sparou"},
	Pair{"bogović", "Bogović"},
	Pair{"aranđelovc", "Aranđelovc"},
	Pair{"rumunije", "Rumunije"},
	Pair{"canić", "Canić"},
	Pair{"šumanović", "Šumanović"},
	Pair{"aronofski", "Aronofski"},
	Pair{"landštajner", "Landštajner"},
	Pair{"veličković", "Veličković"},
	Pair{"haneke", "Haneke"},
	Pair{"loren", "Loren"},
	Pair{"bunjuel", "Bunjuel"},
	Pair{"o'nil", "O'nil"},
	Pair{"harison", "Harison"},
	Pair{"šekspir", "Šekspir"},
	Pair{"kurdistana", "Kurdistana"},
	Pair{"dikens", "Dikens"},
	Pair{"karenjina", "Karenjina"},
	Pair{"simović", "Simović"},
	Pair{"karađorđević", "Karađorđević"},
	Pair{"Valentino rosi", "Valentino Rosi"},
	Pair{"džordž", "Džordž"},
	Pair{"ferari", "Ferari"},
	Pair{"džinović", "Džinović"},
	Pair{"jakšić", "Jakšić"},
	Pair{"konan", "Konan"},
	Pair{"dojl", "Dojl"},
	Pair{"belgije", "Belgije"},
	Pair{"andresku", "Andresku"},
	Pair{"montija", "Montija"},
	Pair{"montija pajtona", "Montija Pajtona"},
	Pair{"dravić", "Dravić"},
	Pair{"šupljikac", "Šupljikac"},
	Pair{"bekuta", "Bekuta"},
	Pair{"Leni kravic", "Leni Kravic"},
	Pair{"nadarević", "Nadarević"},
	Pair{"domanović", "Domanović"},
	Pair{"mihail", "Mihail"},
	Pair{"obrenovića", "Obrenovića"},
	Pair{"medvedev", "Medvedev"},
	Pair{"gustav", "Gustav"},
	Pair{"jung", "Jung"},
	Pair{"antonije", "Antonije"},
	Pair{"bursać", "Bursać"},
	Pair{"jagodini", "Jagodini"},
	Pair{"zaječaru", "Zaječaru"},
	Pair{"veneciji", "Veneciji"},
	Pair{"bogdanović", "Bogdanović"},
	Pair{"zemunu", "Zemunu"},
	Pair{"topalović", "Topalović"},
	Pair{"puškin", "Puškin"},
	Pair{"azije", "Azije"},
	Pair{"velaskez", "Velaskez"},
	Pair{"pekić", "Pekić"},
	Pair{"gvineja", "Gvineja"},
	Pair{"tokiju", "Tokiju"},
	Pair{"labović", "Labović"},
	Pair{"veletanlić", "Veletanlić"},
	Pair{"lampard", "Lampard"},
	Pair{"načić", "Načić"},
	Pair{"amadeus", "Amadeus"},
	Pair{"mocart", "Mocart"},
	Pair{"angelopulos", "Angelopulos"},
	Pair{"bugarskoj", "Bugarskoj"},
)

// AnswerPrefixStrips removes stray multiple-choice markers ("A ", "B ", …)
// left at the front of potera answers.
var AnswerPrefixStrips = NewReplacementMap(
	Pair{"A ", ""},
	Pair{"B ", ""},
	Pair{"V ", ""},
	Pair{"D ", ""},
	Pair{"5 ", ""},
)

// QuoteStrips drops double quotes wholesale; slagalica answers carry them
// inconsistently.
var QuoteStrips = NewReplacementMap(
	Pair{`"`, ""},
)
