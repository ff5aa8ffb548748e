package params

// Griffin constants for width 8 over Goldilocks, taken from the Griffin
// reference instantiation. alpha_i = (i-1)·alpha and beta_i = (i-1)²·beta.
const (
	griffin64x8x4Alpha = 6303398607380181568
	griffin64x8x4Beta  = 5698628486727258041
)

var griffin64x8x4MDS = []uint64{
	6, 4, 2, 2, 3, 2, 1, 1,
	2, 6, 4, 2, 1, 3, 2, 1,
	2, 2, 6, 4, 1, 1, 3, 2,
	4, 2, 2, 6, 2, 1, 1, 3,
	3, 2, 1, 1, 6, 4, 2, 2,
	1, 3, 2, 1, 2, 6, 4, 2,
	1, 1, 3, 2, 2, 2, 6, 4,
	2, 1, 1, 3, 4, 2, 2, 6,
}

var griffin64x8x4ARK = []uint64{
	9692712401870945221, 7618007584389424767, 5248032629877155397, 3331263627507477698, 860199187432911550, 10360526140302824670, 5014858186237911359, 4161019260461204222,
	2649891723669882704, 15035697086627576083, 14140087988207356741, 357780579603925138, 273712483418536090, 348552596175072640, 11116926243792475367, 2475357435469270767,
	9513699262061178678, 11735848814479196467, 12888397717055708631, 15194236579723079985, 14734897209064082180, 9352307275330595094, 2536293522055086772, 1551701365424645656,
	17180574791560887028, 10973179380721509279, 15451549433162538377, 11230437049044589131, 14416448585168854586, 13520950449774622599, 14110026253178816443, 7562226163074683487,
	15625584526294513461, 12868717640985007163, 5045176603305276542, 6821445918259551845, 15049718154108882541, 676731535772312475, 14779363889066167393, 17108914943169063073,
	17529530613938644968, 13801329800663243071, 12666329335088484031, 10289051774796875319, 46795987162557096, 8590445841426612555, 7174111149249058757, 5820086182616968416,
	18362920096257427776, 18336590902193839311, 17082524670299631881, 2963587252058675526, 2307961039727424150, 17730937419471724169, 13943985318970238834, 8435322757080491462,
}
