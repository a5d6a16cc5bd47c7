package pinmap

// XuLA returns the pin association list between the XuLA (board A) and
// XuLA2 (board B) FPGA boards.
func XuLA() []Pair {
	return append([]Pair(nil), xulaPairs...)
}

// Default builds the XuLA/XuLA2 table.
func Default() (*Table, error) {
	return Build(xulaPairs, WithBoardNames("XuLA", "XuLA2"))
}

var xulaPairs = []Pair{
	{A: "p43", B: "a9", Signal: "fpgaClk"},
	{A: Unmapped, B: "j12", Signal: "sdCke"},
	{A: "p40", B: "k11", Signal: "sdClk"},
	{A: "p41", B: "k12", Signal: "sdClkFb"},
	{A: Unmapped, B: "h4", Signal: "sdCe"},
	{A: "p59", B: "l4", Signal: "sdRas"},
	{A: "p60", B: "l3", Signal: "sdCas"},
	{A: "p64", B: "m3", Signal: "sdWe"},
	{A: Unmapped, B: "m4", Signal: "sdDqml"},
	{A: Unmapped, B: "l13", Signal: "sdDqmh"},
	{A: "p53", B: "h3", Signal: "sdBs0"},
	{A: Unmapped, B: "g3", Signal: "sdBs1"},
	{A: "p49", B: "e4", Signal: "sdAddr<0>"},
	{A: "p48", B: "e3", Signal: "sdAddr<1>"},
	{A: "p46", B: "d3", Signal: "sdAddr<2>"},
	{A: "p31", B: "c3", Signal: "sdAddr<3>"},
	{A: "p30", B: "b12", Signal: "sdAddr<4>"},
	{A: "p29", B: "a12", Signal: "sdAddr<5>"},
	{A: "p28", B: "d12", Signal: "sdAddr<6>"},
	{A: "p27", B: "e12", Signal: "sdAddr<7>"},
	{A: "p23", B: "g16", Signal: "sdAddr<8>"},
	{A: "p24", B: "g12", Signal: "sdAddr<9>"},
	{A: "p51", B: "f4", Signal: "sdAddr<10>"},
	{A: "p25", B: "g11", Signal: "sdAddr<11>"},
	{A: Unmapped, B: "h13", Signal: "sdAddr<12>"},
	{A: "p90", B: "p6", Signal: "sdData<0>"},
	{A: "p77", B: "t6", Signal: "sdData<1>"},
	{A: "p78", B: "t5", Signal: "sdData<2>"},
	{A: "p85", B: "p5", Signal: "sdData<3>"},
	{A: "p86", B: "r5", Signal: "sdData<4>"},
	{A: "p71", B: "n5", Signal: "sdData<5>"},
	{A: "p70", B: "p4", Signal: "sdData<6>"},
	{A: "p65", B: "n4", Signal: "sdData<7>"},
	{A: "p16", B: "p12", Signal: "sdData<8>"},
	{A: "p15", B: "r12", Signal: "sdData<9>"},
	{A: "p10", B: "t13", Signal: "sdData<10>"},
	{A: "p9", B: "t14", Signal: "sdData<11>"},
	{A: "p6", B: "r14", Signal: "sdData<12>"},
	{A: "p5", B: "t15", Signal: "sdData<13>"},
	{A: "p99", B: "t12", Signal: "sdData<14>"},
	{A: "p98", B: "p11", Signal: "sdData<15>"},
	{A: Unmapped, B: "t8", Signal: "usdFlashCs"},
	{A: Unmapped, B: "t3", Signal: "flashCs"},
	{A: Unmapped, B: "r11", Signal: "sclk"},
	{A: Unmapped, B: "t10", Signal: "mosi"},
	{A: Unmapped, B: "p10", Signal: "miso"},
	{A: "p44", B: "t7", Signal: "chanClk"},
	{A: "p36", B: "r7", Signal: "chan<0>"},
	{A: "p37", B: "r15", Signal: "chan<1>"},
	{A: "p39", B: "r16", Signal: "chan<2>"},
	{A: "p50", B: "m15", Signal: "chan<3>"},
	{A: "p52", B: "m16", Signal: "chan<4>"},
	{A: "p56", B: "k15", Signal: "chan<5>"},
	{A: "p57", B: "k16", Signal: "chan<6>"},
	{A: "p61", B: "j16", Signal: "chan<7>"},
	{A: "p62", B: "j14", Signal: "chan<8>"},
	{A: "p68", B: "f15", Signal: "chan<9>"},
	{A: "p72", B: "f16", Signal: "chan<10>"},
	{A: "p73", B: "c16", Signal: "chan<11>"},
	{A: "p82", B: "c15", Signal: "chan<12>"},
	{A: "p83", B: "b16", Signal: "chan<13>"},
	{A: "p84", B: "b15", Signal: "chan<14>"},
	{A: "p35", B: "t4", Signal: "chan<15>"},
	{A: "p34", B: "r2", Signal: "chan<16>"},
	{A: "p33", B: "r1", Signal: "chan<17>"},
	{A: "p32", B: "m2", Signal: "chan<18>"},
	{A: "p21", B: "m1", Signal: "chan<19>"},
	{A: "p20", B: "k3", Signal: "chan<20>"},
	{A: "p19", B: "j4", Signal: "chan<21>"},
	{A: "p13", B: "h1", Signal: "chan<22>"},
	{A: "p12", B: "h2", Signal: "chan<23>"},
	{A: "p7", B: "f1", Signal: "chan<24>"},
	{A: "p4", B: "f2", Signal: "chan<25>"},
	{A: "p3", B: "e1", Signal: "chan<26>"},
	{A: "p97", B: "e2", Signal: "chan<27>"},
	{A: "p94", B: "c1", Signal: "chan<28>"},
	{A: "p93", B: "b1", Signal: "chan<29>"},
	{A: "p89", B: "b2", Signal: "chan<30>"},
	{A: "p88", B: "a2", Signal: "chan<31>"},
}
