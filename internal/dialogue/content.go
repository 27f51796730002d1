package dialogue

// ListID names one of the sequenced content lists.
type ListID string

const (
	ListGoOut      ListID = "goOut"
	ListActivities ListID = "activities"
	ListWordGame   ListID = "wordGame"
	ListPoems      ListID = "poems"
)

// contentLists holds the spoken content in its canonical order. Per-user
// presentation order is derived from it by the Sequencer.
var contentLists = map[ListID][]string{
	ListGoOut: {
		"Prendi le chiavi di casa. ",
		"Accertati di aver spento tutte le luci. ",
		"Non dimenticare il tuo cellulare! ",
		"Ricorda di chiudere tutte le finestre e la porta quando esci. ",
		"Prendi l'ombrello se sta piovendo o è nuvoloso. ",
		"Accertati di aver spento tutti gli elettrodomestici ed il gas. ",
		"L'idratazione è importante, porta con te una bottiglietta d'acqua. ",
	},
	ListActivities: {
		"Potresti uscire per una passeggiata. è un'occasione per stare all'aria aperta, fare esercizio fisico e vedere paesaggi diversi. ",
		"Ti va di ballare? Provaci se ti piace la musica, è divertente! ",
		"Che ne dici di ascoltare un po di musica? Puoi anche cantare se ti và. ",
		"Leggere libri e giornali è molto stimolante per la mente. ",
		"Potresti guardare la televisione, magari un film, nuovo o vecchio che sia. ",
		"Se ne hai la possibilità, puoi guardare videocassette di avvenimenti familiari importanti. ",
		"Se c'è qualcuno lì con te potreste fare giochi di società, o con le carte, assieme. ",
		"Guardare album di fotografie potrebbe farti sorridere. ",
		"Che ne dici di fare giardinaggio? Anche con piante da interni. ",
		"Potresti collezionare e mettere in ordine oggetti che ti stanno a cuore! ",
	},
	ListWordGame: {
		" topo . giallo . verde . ape . nero . tigre . viola . gatto . ",
		" cane . orso . rana . grigio . ape . rosso . gallo . blu . ",
		" sette . f . uno . h . m . nove . dieci . venti . ",
		" oca . quattro . leone . tre . sette . scimmia . otto . daino . ",
		" tv . penna . mano . tavolo . naso . coppa . occhi . busta . ",
		" Roma . letto . tazza . Bari . tenda . Napoli . sedia . Firenze .  ",
		" libro . penna . Venezia . carta . Genova . Trento . lettera . Foggia . ",
		" verde . blu . raso . bianco . cotone . rosa . seta . arancio . ",
		" Verona . due . Pisa . Cagliari . sei . dieci . Taranto . Brindisi . ",
		" legno . Perugia . Lucca . acciaio . Ferrara . rame . Matera . vetro . ",
		" pollo . acqua . birra . pasta . uovo . vino . pizza . latte . ",
		" mare . riso . cielo . pesce . aria . carne . sole . frutta . ",
		" arancia . torta . thè . pera . miele . caffè . pane . latte . ",
		" fiori .  tenda . piante . divano . frutti . giardino . sedia . tavolo . ",
		" tappo . limone . mela . nido . secchio . prugna . fune . uva . ",
	},
	ListPoems: {
		" Bacio , di Pablo Neruda . La nebbia a gl'irti colli. Piovigginando sale, E sotto il maestrale. Urla e biancheggia il mar. Ma per le vie del borgo, Dal ribollir de' tini, Va l'aspro odor de i vini, L'anime a rallegrar. Gira su' ceppi accesi, Lo spiedo scoppiettando. Sta il cacciator fischiando, Su l'uscio a rimirar . Tra le rossastre nubi, Stormi d'uccelli neri, Com'esuli pensieri, Nel vespero migrar . ",
		" Il calamaio , di Gianni Rodari . Che belle parole, se si potesse scrivere, con un raggio di sole. Che parole d’argento, se si potesse scrivere, con un filo di vento. Ma in fondo al calamaio, c’è un tesoro nascosto. e chi lo pesca, scriverà parole d’oro, col più nero inchiostro . ",
		" Guarda là quella vezzosa ,  di Umberto Saba . Guarda là quella vezzosa, guarda là quella smorfiosa. Si restringe nelle spalle, tiene il viso nello scialle. O qual mai castigo ha avuto? Nulla . Un bacio ha ricevuto . ",
		" Mattina , di Giuseppe Ungaretti . M'illumino, d'immenso . ",
		" Capriccio , di Federico Lorca . Nella tela della luna, ragno del cielo. S'impigliano le stelle, svolazzanti . ",
		" Ho sceso dandoti il braccio , di Eugenio Montale . Ho sceso, dandoti il braccio, almeno un milione di scale. e ora che non ci sei, è il vuoto ad ogni gradino . Anche così è stato breve, il nostro lungo viaggio . Il mio dura tuttora, né più mi occorrono. le coincidenze, le prenotazioni, le trappole, gli scorni di chi crede. che la realtà sia quella che si vede . Ho sceso milioni di scale, dandoti il braccio, non già perché con quattr'occhi forse si vede di più . Con te le ho scese, perché sapevo che di noi due. le sole vere pupille, sebbene tanto offuscate, erano le tue . ",
		" Il passato , di Emily Dickinson . È una curiosa creatura il passato. Ed a guardarlo in viso. Si può approdare all'estasi, O alla disperazione . Se qualcuno l'incontra disarmato. Presto, gli grido, fuggi! Quelle sue munizioni arrugginite, Possono ancora uccidere! . ",
		" Eterno , di Giuseppe Ungaretti . Tra un fiore colto e, l'altro donato, l'inesprimibile nulla . ",
		" Se tardi a trovarmi , di Walt Whitman . Se tardi a trovarmi, insisti . Se non ci sono in nessun posto. cerca in un altro, perché io sono. seduto da qualche parte, ad aspettare te... e se non mi trovi più, in fondo ai tuoi occhi, allora vuol dire che sono dentro di te . ",
	},
}
