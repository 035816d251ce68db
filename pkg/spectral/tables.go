package spectral

// cieXYZ holds the CIE 1931 2° colour matching functions from 360 nm to 831 nm
// in 1 nm steps, sampled from the multi-lobe Gaussian fit of Wyman, Sloan and
// Shirley (JCGT 2013).
var cieXYZ = [cieSamples][3]float64{
	{0.000001, 0.000041, 0.000484}, // 360
	{0.000001, 0.000045, 0.000560}, // 361
	{0.000001, 0.000049, 0.000647}, // 362
	{0.000002, 0.000054, 0.000746}, // 363
	{0.000003, 0.000059, 0.000859}, // 364
	{0.000003, 0.000065, 0.000988}, // 365
	{0.000005, 0.000071, 0.001135}, // 366
	{0.000006, 0.000078, 0.001301}, // 367
	{0.000008, 0.000086, 0.001490}, // 368
	{0.000011, 0.000094, 0.001703}, // 369
	{0.000015, 0.000103, 0.001944}, // 370
	{0.000019, 0.000113, 0.002216}, // 371
	{0.000025, 0.000123, 0.002523}, // 372
	{0.000033, 0.000135, 0.002867}, // 373
	{0.000043, 0.000147, 0.003254}, // 374
	{0.000056, 0.000161, 0.003688}, // 375
	{0.000073, 0.000176, 0.004173}, // 376
	{0.000094, 0.000192, 0.004715}, // 377
	{0.000121, 0.000209, 0.005321}, // 378
	{0.000156, 0.000228, 0.005995}, // 379
	{0.000199, 0.000249, 0.006746}, // 380
	{0.000253, 0.000271, 0.007581}, // 381
	{0.000320, 0.000295, 0.008508}, // 382
	{0.000404, 0.000321, 0.009535}, // 383
	{0.000507, 0.000349, 0.010674}, // 384
	{0.000635, 0.000380, 0.011935}, // 385
	{0.000792, 0.000413, 0.013330}, // 386
	{0.000984, 0.000448, 0.014874}, // 387
	{0.001217, 0.000487, 0.016582}, // 388
	{0.001500, 0.000528, 0.018472}, // 389
	{0.001841, 0.000573, 0.020565}, // 390
	{0.002252, 0.000622, 0.022885}, // 391
	{0.002743, 0.000674, 0.025459}, // 392
	{0.003328, 0.000730, 0.028322}, // 393
	{0.004022, 0.000791, 0.031512}, // 394
	{0.004842, 0.000856, 0.035076}, // 395
	{0.005806, 0.000926, 0.039067}, // 396
	{0.006935, 0.001001, 0.043552}, // 397
	{0.008252, 0.001082, 0.048606}, // 398
	{0.009780, 0.001170, 0.054318}, // 399
	{0.011547, 0.001263, 0.060795}, // 400
	{0.013579, 0.001364, 0.068157}, // 401
	{0.015906, 0.001471, 0.076546}, // 402
	{0.018560, 0.001587, 0.086120}, // 403
	{0.021572, 0.001711, 0.097062}, // 404
	{0.024974, 0.001843, 0.109573}, // 405
	{0.028802, 0.001985, 0.123877}, // 406
	{0.033086, 0.002138, 0.140217}, // 407
	{0.037859, 0.002300, 0.158852}, // 408
	{0.043151, 0.002474, 0.180057}, // 409
	{0.048992, 0.002660, 0.204114}, // 410
	{0.055407, 0.002858, 0.231306}, // 411
	{0.062417, 0.003070, 0.261913}, // 412
	{0.070040, 0.003296, 0.296195}, // 413
	{0.078287, 0.003537, 0.334387}, // 414
	{0.087165, 0.003795, 0.376686}, // 415
	{0.096670, 0.004068, 0.423234}, // 416
	{0.106794, 0.004360, 0.474108}, // 417
	{0.117519, 0.004671, 0.529306}, // 418
	{0.128816, 0.005001, 0.588735}, // 419
	{0.140648, 0.005352, 0.652200}, // 420
	{0.152968, 0.005725, 0.719394}, // 421
	{0.165718, 0.006122, 0.789895}, // 422
	{0.178831, 0.006543, 0.863160}, // 423
	{0.192228, 0.006990, 0.938534}, // 424
	{0.205822, 0.007464, 1.015247}, // 425
	{0.219519, 0.007966, 1.092437}, // 426
	{0.233212, 0.008498, 1.169154}, // 427
	{0.246793, 0.009062, 1.244392}, // 428
	{0.260145, 0.009659, 1.317104}, // 429
	{0.273148, 0.010291, 1.386237}, // 430
	{0.285681, 0.010958, 1.450755}, // 431
	{0.297622, 0.011664, 1.509675}, // 432
	{0.308849, 0.012410, 1.562096}, // 433
	{0.319247, 0.013197, 1.607223}, // 434
	{0.328703, 0.014028, 1.644401}, // 435
	{0.337114, 0.014905, 1.673127}, // 436
	{0.344386, 0.015829, 1.693074}, // 437
	{0.350435, 0.016802, 1.707990}, // 438
	{0.355191, 0.017828, 1.721715}, // 439
	{0.358596, 0.018907, 1.734199}, // 440
	{0.360609, 0.020043, 1.745395}, // 441
	{0.361204, 0.021237, 1.755256}, // 442
	{0.360823, 0.022492, 1.763740}, // 443
	{0.359919, 0.023810, 1.770806}, // 444
	{0.358492, 0.025195, 1.776416}, // 445
	{0.356547, 0.026647, 1.780537}, // 446
	{0.354089, 0.028171, 1.783139}, // 447
	{0.351125, 0.029768, 1.784194}, // 448
	{0.347664, 0.031442, 1.783681}, // 449
	{0.343717, 0.033195, 1.781581}, // 450
	{0.339297, 0.035029, 1.777881}, // 451
	{0.334418, 0.036949, 1.772574}, // 452
	{0.329096, 0.038955, 1.765654}, // 453
	{0.323348, 0.041053, 1.757123}, // 454
	{0.317193, 0.043244, 1.746987}, // 455
	{0.310651, 0.045531, 1.735258}, // 456
	{0.303743, 0.047918, 1.721953}, // 457
	{0.296491, 0.050408, 1.707094}, // 458
	{0.288918, 0.053003, 1.690707}, // 459
	{0.281047, 0.055708, 1.671543}, // 460
	{0.272902, 0.058525, 1.648383}, // 461
	{0.264510, 0.061458, 1.621345}, // 462
	{0.255895, 0.064510, 1.590602}, // 463
	{0.247083, 0.067685, 1.556376}, // 464
	{0.238100, 0.070987, 1.518934}, // 465
	{0.228973, 0.074418, 1.478582}, // 466
	{0.219727, 0.077985, 1.435659}, // 467
	{0.210390, 0.081689, 1.390527}, // 468
	{0.200987, 0.085537, 1.343567}, // 469
	{0.191544, 0.089532, 1.295168}, // 470
	{0.182089, 0.093680, 1.245722}, // 471
	{0.172647, 0.097985, 1.195612}, // 472
	{0.163243, 0.102455, 1.145209}, // 473
	{0.153902, 0.107094, 1.094868}, // 474
	{0.144650, 0.111909, 1.044914}, // 475
	{0.135511, 0.116909, 0.995648}, // 476
	{0.126508, 0.122100, 0.947336}, // 477
	{0.117666, 0.127493, 0.900211}, // 478
	{0.109007, 0.133095, 0.854471}, // 479
	{0.100554, 0.138919, 0.810275}, // 480
	{0.092329, 0.144976, 0.767752}, // 481
	{0.084352, 0.151278, 0.726992}, // 482
	{0.076644, 0.157839, 0.688057}, // 483
	{0.069224, 0.164674, 0.650978}, // 484
	{0.062112, 0.171799, 0.615761}, // 485
	{0.055325, 0.179231, 0.582387}, // 486
	{0.048881, 0.186990, 0.550821}, // 487
	{0.042796, 0.195094, 0.521010}, // 488
	{0.037085, 0.203565, 0.492887}, // 489
	{0.031763, 0.212424, 0.466377}, // 490
	{0.026842, 0.221693, 0.441398}, // 491
	{0.022335, 0.231396, 0.417864}, // 492
	{0.018253, 0.241557, 0.395687}, // 493
	{0.014606, 0.252198, 0.374780}, // 494
	{0.011402, 0.263344, 0.355056}, // 495
	{0.008649, 0.275015, 0.336432}, // 496
	{0.006353, 0.287234, 0.318830}, // 497
	{0.004520, 0.300020, 0.302177}, // 498
	{0.003152, 0.313389, 0.286402}, // 499
	{0.002253, 0.327358, 0.271444}, // 500
	{0.001824, 0.341935, 0.257244}, // 501
	{0.001841, 0.357129, 0.243750}, // 502
	{0.002265, 0.372940, 0.230914}, // 503
	{0.003097, 0.389366, 0.218696}, // 504
	{0.004335, 0.406398, 0.207056}, // 505
	{0.005977, 0.424019, 0.195962}, // 506
	{0.008021, 0.442207, 0.185382}, // 507
	{0.010465, 0.460933, 0.175291}, // 508
	{0.013307, 0.480158, 0.165664}, // 509
	{0.016544, 0.499838, 0.156479}, // 510
	{0.020174, 0.519919, 0.147718}, // 511
	{0.024193, 0.540340, 0.139362}, // 512
	{0.028600, 0.561034, 0.131395}, // 513
	{0.033391, 0.581925, 0.123801}, // 514
	{0.038564, 0.602932, 0.116568}, // 515
	{0.044115, 0.623967, 0.109681}, // 516
	{0.050041, 0.644938, 0.103128}, // 517
	{0.056340, 0.665750, 0.096897}, // 518
	{0.063008, 0.686303, 0.090976}, // 519
	{0.070043, 0.706498, 0.085354}, // 520
	{0.077442, 0.726235, 0.080020}, // 521
	{0.085201, 0.745416, 0.074963}, // 522
	{0.093319, 0.763946, 0.070172}, // 523
	{0.101791, 0.781733, 0.065639}, // 524
	{0.110616, 0.798692, 0.061351}, // 525
	{0.119789, 0.814745, 0.057300}, // 526
	{0.129309, 0.829822, 0.053475}, // 527
	{0.139172, 0.843862, 0.049867}, // 528
	{0.149374, 0.856814, 0.046467}, // 529
	{0.159914, 0.868640, 0.043266}, // 530
	{0.170786, 0.879316, 0.040254}, // 531
	{0.181988, 0.889285, 0.037423}, // 532
	{0.193517, 0.898854, 0.034765}, // 533
	{0.205367, 0.908014, 0.032270}, // 534
	{0.217535, 0.916754, 0.029931}, // 535
	{0.230017, 0.925068, 0.027741}, // 536
	{0.242807, 0.932949, 0.025691}, // 537
	{0.255900, 0.940391, 0.023774}, // 538
	{0.269290, 0.947389, 0.021983}, // 539
	{0.282972, 0.953939, 0.020311}, // 540
	{0.296940, 0.960037, 0.018752}, // 541
	{0.311185, 0.965681, 0.017299}, // 542
	{0.325700, 0.970870, 0.015947}, // 543
	{0.340478, 0.975602, 0.014689}, // 544
	{0.355509, 0.979878, 0.013520}, // 545
	{0.370783, 0.983698, 0.012434}, // 546
	{0.386292, 0.987064, 0.011426}, // 547
	{0.402024, 0.989979, 0.010493}, // 548
	{0.417967, 0.992444, 0.009628}, // 549
	{0.434110, 0.994464, 0.008827}, // 550
	{0.450438, 0.996042, 0.008087}, // 551
	{0.466939, 0.997183, 0.007403}, // 552
	{0.483598, 0.997893, 0.006772}, // 553
	{0.500399, 0.998176, 0.006190}, // 554
	{0.517327, 0.998039, 0.005653}, // 555
	{0.534364, 0.997487, 0.005159}, // 556
	{0.551493, 0.996529, 0.004705}, // 557
	{0.568695, 0.995170, 0.004287}, // 558
	{0.585951, 0.993419, 0.003903}, // 559
	{0.603241, 0.991282, 0.003551}, // 560
	{0.620544, 0.988768, 0.003229}, // 561
	{0.637839, 0.985883, 0.002933}, // 562
	{0.655105, 0.982638, 0.002662}, // 563
	{0.672317, 0.979039, 0.002415}, // 564
	{0.689454, 0.975095, 0.002188}, // 565
	{0.706492, 0.970814, 0.001982}, // 566
	{0.723406, 0.966204, 0.001793}, // 567
	{0.740172, 0.961275, 0.001622}, // 568
	{0.756765, 0.956031, 0.001465}, // 569
	{0.773160, 0.950398, 0.001323}, // 570
	{0.789331, 0.944342, 0.001193}, // 571
	{0.805253, 0.937874, 0.001076}, // 572
	{0.820901, 0.931002, 0.000969}, // 573
	{0.836247, 0.923736, 0.000872}, // 574
	{0.851268, 0.916086, 0.000784}, // 575
	{0.865937, 0.908062, 0.000705}, // 576
	{0.880229, 0.899675, 0.000633}, // 577
	{0.894120, 0.890936, 0.000568}, // 578
	{0.907583, 0.881856, 0.000509}, // 579
	{0.920596, 0.872446, 0.000456}, // 580
	{0.933134, 0.862718, 0.000408}, // 581
	{0.945175, 0.852684, 0.000365}, // 582
	{0.956696, 0.842356, 0.000326}, // 583
	{0.967675, 0.831747, 0.000292}, // 584
	{0.978092, 0.820868, 0.000260}, // 585
	{0.987926, 0.809734, 0.000232}, // 586
	{0.997159, 0.798356, 0.000207}, // 587
	{1.005773, 0.786749, 0.000184}, // 588
	{1.013750, 0.774924, 0.000164}, // 589
	{1.021075, 0.762896, 0.000146}, // 590
	{1.027734, 0.750678, 0.000129}, // 591
	{1.033713, 0.738284, 0.000115}, // 592
	{1.039001, 0.725727, 0.000102}, // 593
	{1.043586, 0.713021, 0.000090}, // 594
	{1.047459, 0.700180, 0.000080}, // 595
	{1.050613, 0.687218, 0.000071}, // 596
	{1.053042, 0.674148, 0.000063}, // 597
	{1.054740, 0.660985, 0.000055}, // 598
	{1.055704, 0.647742, 0.000049}, // 599
	{1.055926, 0.634432, 0.000043}, // 600
	{1.055164, 0.621070, 0.000038}, // 601
	{1.053305, 0.607669, 0.000033}, // 602
	{1.050355, 0.594242, 0.000029}, // 603
	{1.046323, 0.580802, 0.000026}, // 604
	{1.041222, 0.567363, 0.000023}, // 605
	{1.035068, 0.553938, 0.000020}, // 606
	{1.027880, 0.540538, 0.000018}, // 607
	{1.019679, 0.527177, 0.000015}, // 608
	{1.010492, 0.513867, 0.000013}, // 609
	{1.000346, 0.500619, 0.000012}, // 610
	{0.989271, 0.487445, 0.000010}, // 611
	{0.977301, 0.474356, 0.000009}, // 612
	{0.964472, 0.461364, 0.000008}, // 613
	{0.950821, 0.448479, 0.000007}, // 614
	{0.936388, 0.435710, 0.000006}, // 615
	{0.921215, 0.423069, 0.000005}, // 616
	{0.905345, 0.410563, 0.000005}, // 617
	{0.888823, 0.398203, 0.000004}, // 618
	{0.871696, 0.385997, 0.000003}, // 619
	{0.854009, 0.373953, 0.000003}, // 620
	{0.835810, 0.362079, 0.000003}, // 621
	{0.817149, 0.350382, 0.000002}, // 622
	{0.798073, 0.338868, 0.000002}, // 623
	{0.778632, 0.327546, 0.000002}, // 624
	{0.758875, 0.316419, 0.000001}, // 625
	{0.738849, 0.305494, 0.000001}, // 626
	{0.718604, 0.294775, 0.000001}, // 627
	{0.698186, 0.284268, 0.000001}, // 628
	{0.677644, 0.273976, 0.000001}, // 629
	{0.657021, 0.263902, 0.000001}, // 630
	{0.636364, 0.254051, 0.000001}, // 631
	{0.615715, 0.244424, 0.000001}, // 632
	{0.595116, 0.235025, 0.000000}, // 633
	{0.574609, 0.225854, 0.000000}, // 634
	{0.554231, 0.216913, 0.000000}, // 635
	{0.534020, 0.208203, 0.000000}, // 636
	{0.514010, 0.199725, 0.000000}, // 637
	{0.494236, 0.191478, 0.000000}, // 638
	{0.474728, 0.183464, 0.000000}, // 639
	{0.455516, 0.175680, 0.000000}, // 640
	{0.436627, 0.168127, 0.000000}, // 641
	{0.418086, 0.160803, 0.000000}, // 642
	{0.399916, 0.153706, 0.000000}, // 643
	{0.382138, 0.146835, 0.000000}, // 644
	{0.364770, 0.140187, 0.000000}, // 645
	{0.347830, 0.133760, 0.000000}, // 646
	{0.331331, 0.127551, 0.000000}, // 647
	{0.315286, 0.121558, 0.000000}, // 648
	{0.299707, 0.115776, 0.000000}, // 649
	{0.284601, 0.110204, 0.000000}, // 650
	{0.269975, 0.104837, 0.000000}, // 651
	{0.255835, 0.099671, 0.000000}, // 652
	{0.242183, 0.094702, 0.000000}, // 653
	{0.229021, 0.089927, 0.000000}, // 654
	{0.216349, 0.085341, 0.000000}, // 655
	{0.204166, 0.080941, 0.000000}, // 656
	{0.192469, 0.076721, 0.000000}, // 657
	{0.181253, 0.072676, 0.000000}, // 658
	{0.170513, 0.068804, 0.000000}, // 659
	{0.160242, 0.065098, 0.000000}, // 660
	{0.150434, 0.061555, 0.000000}, // 661
	{0.141079, 0.058170, 0.000000}, // 662
	{0.132168, 0.054937, 0.000000}, // 663
	{0.123691, 0.051853, 0.000000}, // 664
	{0.115638, 0.048912, 0.000000}, // 665
	{0.107996, 0.046109, 0.000000}, // 666
	{0.100755, 0.043442, 0.000000}, // 667
	{0.093901, 0.040903, 0.000000}, // 668
	{0.087423, 0.038490, 0.000000}, // 669
	{0.081307, 0.036197, 0.000000}, // 670
	{0.075540, 0.034020, 0.000000}, // 671
	{0.070109, 0.031954, 0.000000}, // 672
	{0.065001, 0.029996, 0.000000}, // 673
	{0.060202, 0.028140, 0.000000}, // 674
	{0.055700, 0.026383, 0.000000}, // 675
	{0.051480, 0.024721, 0.000000}, // 676
	{0.047531, 0.023150, 0.000000}, // 677
	{0.043840, 0.021665, 0.000000}, // 678
	{0.040392, 0.020263, 0.000000}, // 679
	{0.037178, 0.018940, 0.000000}, // 680
	{0.034183, 0.017693, 0.000000}, // 681
	{0.031397, 0.016518, 0.000000}, // 682
	{0.028808, 0.015412, 0.000000}, // 683
	{0.026405, 0.014371, 0.000000}, // 684
	{0.024178, 0.013392, 0.000000}, // 685
	{0.022115, 0.012472, 0.000000}, // 686
	{0.020207, 0.011608, 0.000000}, // 687
	{0.018445, 0.010798, 0.000000}, // 688
	{0.016818, 0.010038, 0.000000}, // 689
	{0.015320, 0.009326, 0.000000}, // 690
	{0.013940, 0.008659, 0.000000}, // 691
	{0.012671, 0.008035, 0.000000}, // 692
	{0.011506, 0.007451, 0.000000}, // 693
	{0.010437, 0.006906, 0.000000}, // 694
	{0.009458, 0.006396, 0.000000}, // 695
	{0.008561, 0.005921, 0.000000}, // 696
	{0.007742, 0.005477, 0.000000}, // 697
	{0.006993, 0.005064, 0.000000}, // 698
	{0.006311, 0.004679, 0.000000}, // 699
	{0.005689, 0.004320, 0.000000}, // 700
	{0.005123, 0.003987, 0.000000}, // 701
	{0.004608, 0.003677, 0.000000}, // 702
	{0.004141, 0.003389, 0.000000}, // 703
	{0.003718, 0.003122, 0.000000}, // 704
	{0.003334, 0.002874, 0.000000}, // 705
	{0.002987, 0.002644, 0.000000}, // 706
	{0.002673, 0.002431, 0.000000}, // 707
	{0.002389, 0.002234, 0.000000}, // 708
	{0.002134, 0.002052, 0.000000}, // 709
	{0.001904, 0.001883, 0.000000}, // 710
	{0.001697, 0.001727, 0.000000}, // 711
	{0.001510, 0.001583, 0.000000}, // 712
	{0.001343, 0.001451, 0.000000}, // 713
	{0.001193, 0.001328, 0.000000}, // 714
	{0.001059, 0.001215, 0.000000}, // 715
	{0.000939, 0.001111, 0.000000}, // 716
	{0.000832, 0.001016, 0.000000}, // 717
	{0.000736, 0.000928, 0.000000}, // 718
	{0.000650, 0.000847, 0.000000}, // 719
	{0.000574, 0.000772, 0.000000}, // 720
	{0.000506, 0.000704, 0.000000}, // 721
	{0.000446, 0.000642, 0.000000}, // 722
	{0.000393, 0.000584, 0.000000}, // 723
	{0.000345, 0.000532, 0.000000}, // 724
	{0.000303, 0.000483, 0.000000}, // 725
	{0.000266, 0.000439, 0.000000}, // 726
	{0.000233, 0.000399, 0.000000}, // 727
	{0.000204, 0.000362, 0.000000}, // 728
	{0.000179, 0.000329, 0.000000}, // 729
	{0.000156, 0.000298, 0.000000}, // 730
	{0.000136, 0.000270, 0.000000}, // 731
	{0.000119, 0.000245, 0.000000}, // 732
	{0.000103, 0.000221, 0.000000}, // 733
	{0.000090, 0.000200, 0.000000}, // 734
	{0.000078, 0.000181, 0.000000}, // 735
	{0.000068, 0.000163, 0.000000}, // 736
	{0.000059, 0.000148, 0.000000}, // 737
	{0.000051, 0.000133, 0.000000}, // 738
	{0.000044, 0.000120, 0.000000}, // 739
	{0.000038, 0.000108, 0.000000}, // 740
	{0.000033, 0.000097, 0.000000}, // 741
	{0.000028, 0.000088, 0.000000}, // 742
	{0.000025, 0.000079, 0.000000}, // 743
	{0.000021, 0.000071, 0.000000}, // 744
	{0.000018, 0.000064, 0.000000}, // 745
	{0.000016, 0.000057, 0.000000}, // 746
	{0.000013, 0.000051, 0.000000}, // 747
	{0.000012, 0.000046, 0.000000}, // 748
	{0.000010, 0.000041, 0.000000}, // 749
	{0.000008, 0.000037, 0.000000}, // 750
	{0.000007, 0.000033, 0.000000}, // 751
	{0.000006, 0.000030, 0.000000}, // 752
	{0.000005, 0.000026, 0.000000}, // 753
	{0.000004, 0.000024, 0.000000}, // 754
	{0.000004, 0.000021, 0.000000}, // 755
	{0.000003, 0.000019, 0.000000}, // 756
	{0.000003, 0.000017, 0.000000}, // 757
	{0.000002, 0.000015, 0.000000}, // 758
	{0.000002, 0.000013, 0.000000}, // 759
	{0.000002, 0.000012, 0.000000}, // 760
	{0.000001, 0.000011, 0.000000}, // 761
	{0.000001, 0.000009, 0.000000}, // 762
	{0.000001, 0.000008, 0.000000}, // 763
	{0.000001, 0.000007, 0.000000}, // 764
	{0.000001, 0.000007, 0.000000}, // 765
	{0.000001, 0.000006, 0.000000}, // 766
	{0.000001, 0.000005, 0.000000}, // 767
	{0.000000, 0.000005, 0.000000}, // 768
	{0.000000, 0.000004, 0.000000}, // 769
	{0.000000, 0.000004, 0.000000}, // 770
	{0.000000, 0.000003, 0.000000}, // 771
	{0.000000, 0.000003, 0.000000}, // 772
	{0.000000, 0.000002, 0.000000}, // 773
	{0.000000, 0.000002, 0.000000}, // 774
	{0.000000, 0.000002, 0.000000}, // 775
	{0.000000, 0.000002, 0.000000}, // 776
	{0.000000, 0.000001, 0.000000}, // 777
	{0.000000, 0.000001, 0.000000}, // 778
	{0.000000, 0.000001, 0.000000}, // 779
	{0.000000, 0.000001, 0.000000}, // 780
	{0.000000, 0.000001, 0.000000}, // 781
	{0.000000, 0.000001, 0.000000}, // 782
	{0.000000, 0.000001, 0.000000}, // 783
	{0.000000, 0.000001, 0.000000}, // 784
	{0.000000, 0.000001, 0.000000}, // 785
	{0.000000, 0.000000, 0.000000}, // 786
	{0.000000, 0.000000, 0.000000}, // 787
	{0.000000, 0.000000, 0.000000}, // 788
	{0.000000, 0.000000, 0.000000}, // 789
	{0.000000, 0.000000, 0.000000}, // 790
	{0.000000, 0.000000, 0.000000}, // 791
	{0.000000, 0.000000, 0.000000}, // 792
	{0.000000, 0.000000, 0.000000}, // 793
	{0.000000, 0.000000, 0.000000}, // 794
	{0.000000, 0.000000, 0.000000}, // 795
	{0.000000, 0.000000, 0.000000}, // 796
	{0.000000, 0.000000, 0.000000}, // 797
	{0.000000, 0.000000, 0.000000}, // 798
	{0.000000, 0.000000, 0.000000}, // 799
	{0.000000, 0.000000, 0.000000}, // 800
	{0.000000, 0.000000, 0.000000}, // 801
	{0.000000, 0.000000, 0.000000}, // 802
	{0.000000, 0.000000, 0.000000}, // 803
	{0.000000, 0.000000, 0.000000}, // 804
	{0.000000, 0.000000, 0.000000}, // 805
	{0.000000, 0.000000, 0.000000}, // 806
	{0.000000, 0.000000, 0.000000}, // 807
	{0.000000, 0.000000, 0.000000}, // 808
	{0.000000, 0.000000, 0.000000}, // 809
	{0.000000, 0.000000, 0.000000}, // 810
	{0.000000, 0.000000, 0.000000}, // 811
	{0.000000, 0.000000, 0.000000}, // 812
	{0.000000, 0.000000, 0.000000}, // 813
	{0.000000, 0.000000, 0.000000}, // 814
	{0.000000, 0.000000, 0.000000}, // 815
	{0.000000, 0.000000, 0.000000}, // 816
	{0.000000, 0.000000, 0.000000}, // 817
	{0.000000, 0.000000, 0.000000}, // 818
	{0.000000, 0.000000, 0.000000}, // 819
	{0.000000, 0.000000, 0.000000}, // 820
	{0.000000, 0.000000, 0.000000}, // 821
	{0.000000, 0.000000, 0.000000}, // 822
	{0.000000, 0.000000, 0.000000}, // 823
	{0.000000, 0.000000, 0.000000}, // 824
	{0.000000, 0.000000, 0.000000}, // 825
	{0.000000, 0.000000, 0.000000}, // 826
	{0.000000, 0.000000, 0.000000}, // 827
	{0.000000, 0.000000, 0.000000}, // 828
	{0.000000, 0.000000, 0.000000}, // 829
	{0.000000, 0.000000, 0.000000}, // 830
	{0.000000, 0.000000, 0.000000}, // 831
}

// rgbBasis holds the red, green and blue reflectance basis spectra from 380 nm
// to 780 nm in 5 nm steps. An RGB triple maps to a spectrum by weighting the
// three columns. The columns are non-negative and sum to one at every sample,
// so white maps to a flat unit spectrum and reflectances stay within [0, 1].
var rgbBasis = [basisSamples][3]float64{
	{0.012606, 0.001027, 0.986367}, // 380
	{0.013960, 0.000851, 0.985189}, // 385
	{0.016814, 0.000505, 0.982680}, // 390
	{0.021142, 0.000109, 0.978749}, // 395
	{0.026673, 0.000000, 0.973327}, // 400
	{0.033120, 0.000000, 0.966880}, // 405
	{0.039773, 0.000000, 0.960227}, // 410
	{0.045550, 0.000000, 0.954450}, // 415
	{0.049441, 0.000000, 0.950559}, // 420
	{0.051030, 0.000000, 0.948970}, // 425
	{0.050632, 0.000000, 0.949368}, // 430
	{0.048564, 0.000000, 0.951436}, // 435
	{0.044046, 0.000000, 0.955954}, // 440
	{0.036245, 0.000000, 0.963755}, // 445
	{0.027363, 0.000000, 0.972637}, // 450
	{0.019300, 0.004381, 0.976319}, // 455
	{0.007042, 0.033684, 0.959273}, // 460
	{0.000000, 0.081139, 0.918861}, // 465
	{0.000000, 0.143094, 0.856906}, // 470
	{0.000000, 0.219680, 0.780320}, // 475
	{0.000000, 0.307180, 0.692820}, // 480
	{0.000000, 0.401854, 0.598146}, // 485
	{0.000000, 0.500081, 0.499919}, // 490
	{0.000000, 0.598361, 0.401639}, // 495
	{0.000000, 0.693242, 0.306758}, // 500
	{0.000000, 0.781252, 0.218748}, // 505
	{0.000000, 0.858874, 0.141126}, // 510
	{0.000000, 0.922608, 0.077392}, // 515
	{0.000000, 0.969143, 0.030857}, // 520
	{0.000000, 0.995630, 0.004370}, // 525
	{0.000000, 1.000000, 0.000000}, // 530
	{0.000000, 1.000000, 0.000000}, // 535
	{0.000000, 1.000000, 0.000000}, // 540
	{0.000000, 1.000000, 0.000000}, // 545
	{0.000000, 1.000000, 0.000000}, // 550
	{0.000000, 1.000000, 0.000000}, // 555
	{0.000000, 1.000000, 0.000000}, // 560
	{0.000000, 0.982588, 0.017412}, // 565
	{0.000000, 0.948988, 0.051012}, // 570
	{0.070802, 0.866296, 0.062902}, // 575
	{0.208525, 0.739097, 0.052378}, // 580
	{0.384668, 0.584353, 0.030980}, // 585
	{0.571328, 0.418693, 0.009979}, // 590
	{0.742149, 0.257851, 0.000000}, // 595
	{0.878502, 0.121498, 0.000000}, // 600
	{0.968752, 0.031248, 0.000000}, // 605
	{1.000000, 0.000000, 0.000000}, // 610
	{1.000000, 0.000000, 0.000000}, // 615
	{1.000000, 0.000000, 0.000000}, // 620
	{1.000000, 0.000000, 0.000000}, // 625
	{1.000000, 0.000000, 0.000000}, // 630
	{1.000000, 0.000000, 0.000000}, // 635
	{1.000000, 0.000000, 0.000000}, // 640
	{1.000000, 0.000000, 0.000000}, // 645
	{1.000000, 0.000000, 0.000000}, // 650
	{1.000000, 0.000000, 0.000000}, // 655
	{1.000000, 0.000000, 0.000000}, // 660
	{0.992643, 0.007357, 0.000000}, // 665
	{0.973719, 0.026281, 0.000000}, // 670
	{0.945064, 0.054936, 0.000000}, // 675
	{0.907736, 0.092264, 0.000000}, // 680
	{0.862328, 0.137672, 0.000000}, // 685
	{0.809285, 0.190715, 0.000000}, // 690
	{0.749201, 0.250799, 0.000000}, // 695
	{0.683012, 0.316960, 0.000028}, // 700
	{0.612111, 0.387773, 0.000116}, // 705
	{0.538390, 0.461408, 0.000202}, // 710
	{0.464046, 0.535692, 0.000262}, // 715
	{0.391395, 0.608314, 0.000291}, // 720
	{0.322645, 0.677062, 0.000293}, // 725
	{0.259672, 0.740053, 0.000275}, // 730
	{0.203858, 0.795896, 0.000245}, // 735
	{0.156000, 0.843790, 0.000210}, // 740
	{0.116305, 0.883521, 0.000174}, // 745
	{0.084467, 0.915394, 0.000139}, // 750
	{0.059790, 0.940101, 0.000109}, // 755
	{0.041346, 0.958571, 0.000083}, // 760
	{0.028123, 0.971814, 0.000063}, // 765
	{0.019164, 0.980787, 0.000048}, // 770
	{0.013670, 0.986291, 0.000039}, // 775
	{0.011071, 0.988895, 0.000034}, // 780
}
